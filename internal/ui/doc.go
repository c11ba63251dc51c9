// Package ui provides rendering functions for the homescreen terminal UI.
//
// It contains the Render function which takes RenderParams and produces
// the terminal output, the mock phone screens for each demo, and Lipgloss
// style definitions. Rendering is pure: it reads widget state and never
// changes it.
package ui
