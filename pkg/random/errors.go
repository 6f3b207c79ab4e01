package random

import "errors"

// ErrInvalidArgument is returned when a seed, option set or input slice cannot
// be used. Callers should match it with errors.Is; returned errors wrap it
// with the offending value.
var ErrInvalidArgument = errors.New("invalid argument")
