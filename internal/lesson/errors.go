package lesson

import "errors"

// ErrInvalidArgument is returned when a value lies outside its declared
// domain: an unknown section, an option that is not offered, or a number
// outside a slider's bounds. State is left unchanged.
var ErrInvalidArgument = errors.New("invalid argument")
