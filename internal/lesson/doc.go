// Package lesson holds the lesson's fixed section list, its embedded content,
// and the Tracker that records which sections the user has completed.
//
// The Tracker is created once at startup and passed to whatever needs it.
// Completion only grows: there is no way to unmark a section.
package lesson
