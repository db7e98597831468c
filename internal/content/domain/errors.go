package domain

import "errors"

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("not found")

// ErrInvalid is wrapped by validation failures so callers can map them to a
// 400 without inspecting message text.
var ErrInvalid = errors.New("invalid input")
