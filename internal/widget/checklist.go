package widget

import (
	"fmt"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// Checklist is a multi-select list of items grouped into categories.
// Its progress is local to the widget and separate from lesson progress.
// Beside the list it shows either the poor or the good example screen.
type Checklist struct {
	categories []lesson.CategoryContent
	order      []lesson.ItemContent // flattened in display order
	category   map[string]string    // item ID -> category ID
	checked    map[string]bool
	cursor     int

	poor, good lesson.ExampleContent
	showGood   bool
}

// NewChecklist returns a checklist over the given categories with nothing
// checked, showing the good example.
func NewChecklist(c lesson.ChecklistContent) *Checklist {
	cl := &Checklist{
		categories: c.Categories,
		category:   make(map[string]string),
		checked:    make(map[string]bool),
		poor:       c.Poor,
		good:       c.Good,
		showGood:   true,
	}
	for _, cat := range c.Categories {
		for _, it := range cat.Items {
			cl.order = append(cl.order, it)
			cl.category[it.ID] = cat.ID
		}
	}
	return cl
}

// Categories returns the checklist's categories.
func (c *Checklist) Categories() []lesson.CategoryContent {
	return c.categories
}

// Toggle checks an unchecked item or unchecks a checked one.
func (c *Checklist) Toggle(item string) error {
	if _, ok := c.category[item]; !ok {
		return fmt.Errorf("checklist item %q: %w", item, lesson.ErrInvalidArgument)
	}
	if c.checked[item] {
		delete(c.checked, item)
	} else {
		c.checked[item] = true
	}
	return nil
}

// IsChecked reports whether item is checked.
func (c *Checklist) IsChecked(item string) bool {
	return c.checked[item]
}

// CategoryProgress returns how many items of a category are checked and how
// many it has.
func (c *Checklist) CategoryProgress(category string) (done, total int) {
	for _, cat := range c.categories {
		if cat.ID != category {
			continue
		}
		for _, it := range cat.Items {
			total++
			if c.checked[it.ID] {
				done++
			}
		}
	}
	return done, total
}

// CategoryComplete reports whether every item of a category is checked.
// Unknown and empty categories are never complete.
func (c *Checklist) CategoryComplete(category string) bool {
	done, total := c.CategoryProgress(category)
	return total > 0 && done == total
}

// Checked returns the number of checked items.
func (c *Checklist) Checked() int {
	return len(c.checked)
}

// Total returns the number of items.
func (c *Checklist) Total() int {
	return len(c.order)
}

// Progress returns the checked fraction in [0,1]; 0 for an empty checklist.
func (c *Checklist) Progress() float64 {
	if len(c.order) == 0 {
		return 0
	}
	return float64(len(c.checked)) / float64(len(c.order))
}

// Complete reports whether every item is checked.
func (c *Checklist) Complete() bool {
	return len(c.order) > 0 && len(c.checked) == len(c.order)
}

// Cursor returns the index of the focused item in display order.
func (c *Checklist) Cursor() int {
	return c.cursor
}

// Selected returns the focused item ID, or "" for an empty checklist.
func (c *Checklist) Selected() string {
	return c.SelectedItem().ID
}

// SelectedItem returns the focused item, or the zero item for an empty
// checklist.
func (c *Checklist) SelectedItem() lesson.ItemContent {
	if len(c.order) == 0 {
		return lesson.ItemContent{}
	}
	return c.order[c.cursor]
}

// MoveUp moves focus to the previous item.
func (c *Checklist) MoveUp() {
	c.cursor = clampCursor(c.cursor-1, len(c.order))
}

// MoveDown moves focus to the next item.
func (c *Checklist) MoveDown() {
	c.cursor = clampCursor(c.cursor+1, len(c.order))
}

// ToggleSelected toggles the focused item.
func (c *Checklist) ToggleSelected() {
	if item := c.Selected(); item != "" {
		_ = c.Toggle(item)
	}
}

// ShowingGood reports whether the good example is shown.
func (c *Checklist) ShowingGood() bool {
	return c.showGood
}

// ToggleExample switches between the poor and the good example.
func (c *Checklist) ToggleExample() {
	c.showGood = !c.showGood
}

// Example returns the example currently shown.
func (c *Checklist) Example() lesson.ExampleContent {
	if c.showGood {
		return c.good
	}
	return c.poor
}
