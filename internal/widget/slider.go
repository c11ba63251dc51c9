package widget

import (
	"fmt"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// Slider is a bounded integer control moving in fixed steps. A Step of zero
// or less moves in steps of one.
type Slider struct {
	Key     string
	Label   string
	Unit    string
	Min     int
	Max     int
	Step    int
	Default int

	value int
}

// NewSlider builds a slider from its declared bounds, starting at the
// declared default.
func NewSlider(c lesson.SliderContent) Slider {
	s := Slider{
		Key:     c.Key,
		Label:   c.Label,
		Unit:    c.Unit,
		Min:     c.Min,
		Max:     c.Max,
		Step:    c.Step,
		Default: c.Default,
	}
	if s.Step <= 0 {
		s.Step = 1
	}
	s.value = s.clamp(c.Default)
	return s
}

// Value returns the current value.
func (s Slider) Value() int {
	return s.value
}

// Increment moves one step up, stopping at the highest value on the grid.
func (s *Slider) Increment() {
	s.value = s.clamp(s.value + s.step())
}

// Decrement moves one step down, stopping at Min.
func (s *Slider) Decrement() {
	s.value = s.clamp(s.value - s.step())
}

// Set sets the value directly. Values outside [Min,Max] or off the step grid
// are rejected and the value is left unchanged.
func (s *Slider) Set(v int) error {
	if v < s.Min || v > s.Max {
		return fmt.Errorf("%s: %d outside [%d,%d]: %w", s.name(), v, s.Min, s.Max, lesson.ErrInvalidArgument)
	}
	if (v-s.Min)%s.step() != 0 {
		return fmt.Errorf("%s: %d is not a multiple of %d from %d: %w", s.name(), v, s.step(), s.Min, lesson.ErrInvalidArgument)
	}
	s.value = v
	return nil
}

// Reset restores the default value.
func (s *Slider) Reset() {
	s.value = s.clamp(s.Default)
}

// Ratio returns the position of the value within the bounds, in [0,1].
func (s Slider) Ratio() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return float64(s.value-s.Min) / float64(s.Max-s.Min)
}

// top is the highest value reachable from Min in whole steps.
func (s Slider) top() int {
	if s.Max <= s.Min {
		return s.Min
	}
	return s.Max - (s.Max-s.Min)%s.step()
}

// clamp bounds v to [Min, top] and snaps it down onto the step grid.
func (s Slider) clamp(v int) int {
	if v > s.top() {
		v = s.top()
	}
	if v < s.Min {
		v = s.Min
	}
	return v - (v-s.Min)%s.step()
}

func (s Slider) step() int {
	if s.Step <= 0 {
		return 1
	}
	return s.Step
}

func (s Slider) name() string {
	if s.Key != "" {
		return s.Key
	}
	return "slider"
}
