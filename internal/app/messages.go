package app

import (
	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// Message types for the bubbletea app.

// SectionCompletedMsg is sent when a section is marked complete for the
// first time.
type SectionCompletedMsg struct {
	Section lesson.SectionID
	Ratio   float64
	Done    bool
}

// PracticeCopiedMsg is sent when a practice was copied to the clipboard.
type PracticeCopiedMsg struct {
	Title string
}

// ErrorMsg is a general error message.
type ErrorMsg struct {
	Err error
}
