package coursedb

import "errors"

// ErrNotFound is returned when a course does not exist.
var ErrNotFound = errors.New("course record not found")
