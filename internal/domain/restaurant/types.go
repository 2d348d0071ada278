package restaurant

import "errors"

var (
	ErrMissingID   = errors.New("restaurant id cannot be empty")
	ErrMissingName = errors.New("restaurant name cannot be empty")
)
