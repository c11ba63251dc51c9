package widget

import (
	"fmt"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// HierarchyOption names one toggle of the hierarchy demo.
type HierarchyOption int

const (
	HierarchyGuide HierarchyOption = iota
	HierarchySizes
	HierarchyContrast
)

// HierarchyOptions lists the toggles in display order.
var HierarchyOptions = []HierarchyOption{
	HierarchyGuide,
	HierarchySizes,
	HierarchyContrast,
}

// HierarchyCues are the toggles that shape the screen itself. The guide
// only annotates it.
var HierarchyCues = []HierarchyOption{
	HierarchySizes,
	HierarchyContrast,
}

// Key returns the content key the option is labelled under.
func (o HierarchyOption) Key() string {
	switch o {
	case HierarchyGuide:
		return "guide"
	case HierarchySizes:
		return "sizes"
	case HierarchyContrast:
		return "contrast"
	}
	return ""
}

// Hierarchy holds the toggles of the visual hierarchy demo.
type Hierarchy struct {
	ShowGuide      bool // outline each block with its level
	ProperSizes    bool
	ProperContrast bool

	cursor int
}

// NewHierarchy returns the demo with proper sizes and contrast on and the
// guide hidden.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		ProperSizes:    true,
		ProperContrast: true,
	}
}

// Enabled reports the state of one toggle.
func (h *Hierarchy) Enabled(o HierarchyOption) bool {
	switch o {
	case HierarchyGuide:
		return h.ShowGuide
	case HierarchySizes:
		return h.ProperSizes
	case HierarchyContrast:
		return h.ProperContrast
	}
	return false
}

// Set sets one toggle.
func (h *Hierarchy) Set(o HierarchyOption, on bool) error {
	switch o {
	case HierarchyGuide:
		h.ShowGuide = on
	case HierarchySizes:
		h.ProperSizes = on
	case HierarchyContrast:
		h.ProperContrast = on
	default:
		return fmt.Errorf("hierarchy option %d: %w", o, lesson.ErrInvalidArgument)
	}
	return nil
}

// Toggle flips one toggle.
func (h *Hierarchy) Toggle(o HierarchyOption) error {
	return h.Set(o, !h.Enabled(o))
}

// Cursor returns the index of the focused toggle.
func (h *Hierarchy) Cursor() int {
	return h.cursor
}

// Selected returns the focused toggle.
func (h *Hierarchy) Selected() HierarchyOption {
	return HierarchyOptions[h.cursor]
}

// MoveUp moves focus to the previous toggle.
func (h *Hierarchy) MoveUp() {
	h.cursor = clampCursor(h.cursor-1, len(HierarchyOptions))
}

// MoveDown moves focus to the next toggle.
func (h *Hierarchy) MoveDown() {
	h.cursor = clampCursor(h.cursor+1, len(HierarchyOptions))
}

// ToggleSelected flips the focused toggle.
func (h *Hierarchy) ToggleSelected() {
	_ = h.Toggle(h.Selected())
}

// Score counts how many of the HierarchyCues are on.
func (h *Hierarchy) Score() int {
	n := 0
	for _, o := range HierarchyCues {
		if h.Enabled(o) {
			n++
		}
	}
	return n
}
