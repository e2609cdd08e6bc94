package repository

import "errors"

// ErrNotFound is the sentinel wrapped by all repositories when a row is
// absent. Callers match with errors.Is and surface it as a client error.
var ErrNotFound = errors.New("not found")
