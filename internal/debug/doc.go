// Package debug provides debug logging functionality for homescreen.
//
// When enabled via the --debug flag, it logs section changes, completions and
// rejected input to a file so the terminal UI is left untouched.
package debug
