// Package app provides the main Bubble Tea application model for the lesson.
//
// It owns the lesson progress tracker and every widget instance, routes key
// presses to the active panel, and hands plain values to the ui package for
// rendering. Sections are marked complete explicitly with the complete key,
// and the accessibility section also completes itself once every checklist
// item is checked (when lesson.auto_complete is enabled).
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
