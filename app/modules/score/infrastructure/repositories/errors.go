package scoredb

import "errors"

// ErrNotFound is returned when a score entry does not exist.
var ErrNotFound = errors.New("score entry not found")
