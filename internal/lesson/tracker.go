package lesson

import "fmt"

// Tracker records which lesson sections have been marked complete.
//
// A Tracker has a single owner which mutates it from the UI loop, so it does
// no locking.
type Tracker struct {
	sections  []SectionID
	completed map[SectionID]struct{}
}

// NewTracker returns a tracker over the given sections with nothing complete.
// Duplicate sections are collapsed.
func NewTracker(sections []SectionID) *Tracker {
	seen := make(map[SectionID]bool, len(sections))
	var list []SectionID
	for _, s := range sections {
		if seen[s] {
			continue
		}
		seen[s] = true
		list = append(list, s)
	}
	return &Tracker{
		sections:  list,
		completed: make(map[SectionID]struct{}, len(list)),
	}
}

// NewDefaultTracker returns a tracker over AllSections.
func NewDefaultTracker() *Tracker {
	return NewTracker(AllSections)
}

// MarkComplete marks a section complete. Marking an already complete section
// is a no-op. Sections the tracker does not know about are rejected.
func (t *Tracker) MarkComplete(id SectionID) error {
	if !t.has(id) {
		return fmt.Errorf("mark complete %q: %w", id, ErrInvalidArgument)
	}
	t.completed[id] = struct{}{}
	return nil
}

// IsComplete reports whether id has been marked complete.
func (t *Tracker) IsComplete(id SectionID) bool {
	_, ok := t.completed[id]
	return ok
}

// ProgressRatio returns completed/total in [0,1]. It is 0 for a tracker with
// no sections.
func (t *Tracker) ProgressRatio() float64 {
	if len(t.sections) == 0 {
		return 0
	}
	return float64(len(t.completed)) / float64(len(t.sections))
}

// Completed returns the completed sections in section order.
func (t *Tracker) Completed() []SectionID {
	var out []SectionID
	for _, s := range t.sections {
		if t.IsComplete(s) {
			out = append(out, s)
		}
	}
	return out
}

// Sections returns a copy of the tracked section list.
func (t *Tracker) Sections() []SectionID {
	out := make([]SectionID, len(t.sections))
	copy(out, t.sections)
	return out
}

// Count returns the number of completed sections.
func (t *Tracker) Count() int {
	return len(t.completed)
}

// Total returns the number of tracked sections.
func (t *Tracker) Total() int {
	return len(t.sections)
}

// Done reports whether every section is complete.
func (t *Tracker) Done() bool {
	return len(t.sections) > 0 && len(t.completed) == len(t.sections)
}

func (t *Tracker) has(id SectionID) bool {
	for _, s := range t.sections {
		if s == id {
			return true
		}
	}
	return false
}
