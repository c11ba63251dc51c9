// Package widget implements the local state of each interactive demo in the
// lesson: the hierarchy toggles, spacing sliders, navigation pattern picker,
// accessibility checklist, best-practices list, and the tab container that
// switches between sections.
//
// Widgets never read one another's state. Keyboard-style mutators (Toggle,
// Increment, Next) always succeed and clamp or wrap at the edges; direct
// setters (Set, Select) validate their input and return an error wrapping
// lesson.ErrInvalidArgument without changing anything.
package widget
