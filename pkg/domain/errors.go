package domain

import "errors"

// ErrInstanceNotFound is returned when an instance ID cannot be found in a
// snapshot store.
var ErrInstanceNotFound = errors.New("instance not found")
