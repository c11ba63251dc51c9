package widget

import (
	"fmt"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// Tabs shows exactly one of N named panels. The most recent selection wins.
type Tabs struct {
	names  []string
	active int
}

// NewTabs returns tabs over names with initial active. An out-of-range
// initial panel falls back to the first one.
func NewTabs(names []string, initial int) *Tabs {
	t := &Tabs{names: names}
	if initial >= 0 && initial < len(names) {
		t.active = initial
	}
	return t
}

// Names returns the panel names.
func (t *Tabs) Names() []string {
	return t.names
}

// Len returns the number of panels.
func (t *Tabs) Len() int {
	return len(t.names)
}

// Active returns the index of the shown panel.
func (t *Tabs) Active() int {
	return t.active
}

// ActiveName returns the name of the shown panel.
func (t *Tabs) ActiveName() string {
	if len(t.names) == 0 {
		return ""
	}
	return t.names[t.active]
}

// Select shows panel i.
func (t *Tabs) Select(i int) error {
	if i < 0 || i >= len(t.names) {
		return fmt.Errorf("tab %d of %d: %w", i, len(t.names), lesson.ErrInvalidArgument)
	}
	t.active = i
	return nil
}

// SelectName shows the panel called name.
func (t *Tabs) SelectName(name string) error {
	for i, n := range t.names {
		if n == name {
			t.active = i
			return nil
		}
	}
	return fmt.Errorf("tab %q: %w", name, lesson.ErrInvalidArgument)
}

// Next shows the following panel, wrapping around.
func (t *Tabs) Next() {
	t.active = wrap(t.active+1, len(t.names))
}

// Prev shows the preceding panel, wrapping around.
func (t *Tabs) Prev() {
	t.active = wrap(t.active-1, len(t.names))
}
