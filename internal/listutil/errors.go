package listutil

import "errors"

// ErrEmptyInput is returned when an operation needs at least one element.
var ErrEmptyInput = errors.New("List cannot be empty")
