package widget

import (
	"fmt"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// Slider keys used by the spacing demo.
const (
	SectionSpacing = "section_spacing"
	CardPadding    = "card_padding"
	ElementGap     = "element_gap"
)

// fallbackSliders are used for any slider the content does not declare.
var fallbackSliders = []lesson.SliderContent{
	{Key: SectionSpacing, Label: "Section spacing", Unit: "pt", Min: 8, Max: 48, Step: 8, Default: 24},
	{Key: CardPadding, Label: "Card padding", Unit: "pt", Min: 8, Max: 32, Step: 8, Default: 16},
	{Key: ElementGap, Label: "Element gap", Unit: "pt", Min: 4, Max: 24, Step: 4, Default: 12},
}

// Spacing holds the sliders of the spacing demo.
type Spacing struct {
	sliders []Slider
	cursor  int
}

// NewSpacing builds the section spacing, card padding and element gap
// sliders from content, in that order.
func NewSpacing(c lesson.SpacingContent) *Spacing {
	s := &Spacing{}
	for _, fb := range fallbackSliders {
		sc, ok := c.Slider(fb.Key)
		if !ok {
			sc = fb
		}
		s.sliders = append(s.sliders, NewSlider(sc))
	}
	return s
}

// Sliders returns the sliders in display order.
func (s *Spacing) Sliders() []Slider {
	return s.sliders
}

// Slider returns the slider under key, or nil.
func (s *Spacing) Slider(key string) *Slider {
	for i := range s.sliders {
		if s.sliders[i].Key == key {
			return &s.sliders[i]
		}
	}
	return nil
}

// Value returns the value of the slider under key, or 0.
func (s *Spacing) Value(key string) int {
	if sl := s.Slider(key); sl != nil {
		return sl.Value()
	}
	return 0
}

// Set sets the slider under key directly.
func (s *Spacing) Set(key string, v int) error {
	sl := s.Slider(key)
	if sl == nil {
		return fmt.Errorf("unknown slider %q: %w", key, lesson.ErrInvalidArgument)
	}
	return sl.Set(v)
}

// Cursor returns the index of the focused slider.
func (s *Spacing) Cursor() int {
	return s.cursor
}

// MoveUp moves focus to the previous slider.
func (s *Spacing) MoveUp() {
	s.cursor = clampCursor(s.cursor-1, len(s.sliders))
}

// MoveDown moves focus to the next slider.
func (s *Spacing) MoveDown() {
	s.cursor = clampCursor(s.cursor+1, len(s.sliders))
}

// Increment steps the focused slider up.
func (s *Spacing) Increment() {
	s.sliders[s.cursor].Increment()
}

// Decrement steps the focused slider down.
func (s *Spacing) Decrement() {
	s.sliders[s.cursor].Decrement()
}

// Reset restores every slider to its default.
func (s *Spacing) Reset() {
	for i := range s.sliders {
		s.sliders[i].Reset()
	}
}

// Balanced reports whether related elements sit closer together than
// unrelated sections.
func (s *Spacing) Balanced() bool {
	return s.Value(ElementGap) < s.Value(SectionSpacing)
}
