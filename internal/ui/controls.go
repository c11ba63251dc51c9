package ui

import (
	"fmt"
	"strings"

	"github.com/henri123lemoine/homescreen/internal/widget"
)

// SliderTrackWidth is the number of cells in a slider track.
const SliderTrackWidth = 20

func cursorPrefix(selected bool) string {
	if selected {
		return SelectedStyle.Render(SymbolCursor + " ")
	}
	return "  "
}

func renderToggle(label string, on, selected bool) string {
	state := PendingStyle.Render(SymbolOff + " off")
	if on {
		state = DoneStyle.Render(SymbolOn + " on ")
	}
	if selected {
		label = SelectedStyle.Render(label)
	} else {
		label = NormalStyle.Render(label)
	}
	return cursorPrefix(selected) + state + "  " + label
}

// renderSliderTrack draws a track with the knob placed at ratio.
func renderSliderTrack(ratio float64, width int) string {
	if width < 2 {
		width = 2
	}
	pos := int(ratio*float64(width-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return "├" + strings.Repeat(SymbolTrack, pos) + SymbolKnob + strings.Repeat(SymbolTrack, width-1-pos) + "┤"
}

func renderSlider(s widget.Slider, selected bool) string {
	label := fmt.Sprintf("%-16s", s.Label)
	if selected {
		label = SelectedStyle.Render(label)
	} else {
		label = NormalStyle.Render(label)
	}
	track := renderSliderTrack(s.Ratio(), SliderTrackWidth)
	if selected {
		track = SelectedStyle.Render(track)
	} else {
		track = MutedStyle.Render(track)
	}
	value := fmt.Sprintf("%3d%s", s.Value(), s.Unit)
	bounds := MutedStyle.Render(fmt.Sprintf("[%d-%d]", s.Min, s.Max))
	return cursorPrefix(selected) + label + " " + track + " " + value + " " + bounds
}

func renderRadio(label string, on, selected bool) string {
	mark := PendingStyle.Render(SymbolRadioOff)
	if on {
		mark = DoneStyle.Render(SymbolRadioOn)
	}
	if selected {
		label = SelectedStyle.Render(label)
	} else {
		label = NormalStyle.Render(label)
	}
	return cursorPrefix(selected) + mark + " " + label
}

func renderCheck(label string, on, selected bool) string {
	mark := PendingStyle.Render(SymbolCheckOff)
	if on {
		mark = DoneStyle.Render(SymbolCheckOn)
	}
	if selected {
		label = SelectedStyle.Render(label)
	} else if on {
		label = MutedStyle.Render(label)
	} else {
		label = NormalStyle.Render(label)
	}
	return cursorPrefix(selected) + mark + " " + label
}
