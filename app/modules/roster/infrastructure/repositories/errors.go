package rosterdb

import "errors"

// ErrNotFound is returned when a player or team does not exist.
var ErrNotFound = errors.New("roster record not found")
