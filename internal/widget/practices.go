package widget

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// Practices is the best-practices list with a fuzzy filter.
type Practices struct {
	items    []lesson.PracticeContent
	filter   string
	visible  []int
	cursor   int
	showDont bool
}

// NewPractices returns an unfiltered list showing the "do" examples.
func NewPractices(items []lesson.PracticeContent) *Practices {
	p := &Practices{items: items}
	p.applyFilter()
	return p
}

// practiceSource implements fuzzy.Source over practices.
type practiceSource []lesson.PracticeContent

func (s practiceSource) String(i int) string {
	// Match against title and category so "nav" finds navigation tips
	return s[i].Title + " " + s[i].Category
}

func (s practiceSource) Len() int {
	return len(s)
}

// SetFilter replaces the filter query.
func (p *Practices) SetFilter(q string) {
	p.filter = q
	p.applyFilter()
}

// Filter returns the current query.
func (p *Practices) Filter() string {
	return p.filter
}

func (p *Practices) applyFilter() {
	p.visible = p.visible[:0]
	q := strings.TrimSpace(p.filter)
	if q == "" {
		for i := range p.items {
			p.visible = append(p.visible, i)
		}
	} else {
		for _, match := range fuzzy.FindFrom(q, practiceSource(p.items)) {
			p.visible = append(p.visible, match.Index)
		}
	}
	p.cursor = clampCursor(p.cursor, len(p.visible))
}

// Visible returns the practices matching the filter, best match first.
func (p *Practices) Visible() []lesson.PracticeContent {
	out := make([]lesson.PracticeContent, 0, len(p.visible))
	for _, i := range p.visible {
		out = append(out, p.items[i])
	}
	return out
}

// Selected returns the focused practice, or false when nothing matches the
// filter.
func (p *Practices) Selected() (lesson.PracticeContent, bool) {
	if len(p.visible) == 0 {
		return lesson.PracticeContent{}, false
	}
	return p.items[p.visible[p.cursor]], true
}

// Len returns the number of practices, ignoring the filter.
func (p *Practices) Len() int {
	return len(p.items)
}

// ToggleExamples switches between the "do" and "don't" examples.
func (p *Practices) ToggleExamples() {
	p.showDont = !p.showDont
}

// ShowingDont reports whether the "don't" examples are shown.
func (p *Practices) ShowingDont() bool {
	return p.showDont
}

// Cursor returns the index of the focused practice among the visible ones.
func (p *Practices) Cursor() int {
	return p.cursor
}

// MoveUp moves focus to the previous visible practice.
func (p *Practices) MoveUp() {
	p.cursor = clampCursor(p.cursor-1, len(p.visible))
}

// MoveDown moves focus to the next visible practice.
func (p *Practices) MoveDown() {
	p.cursor = clampCursor(p.cursor+1, len(p.visible))
}
