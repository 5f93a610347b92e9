package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a non-positive size.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a coordinate falls outside [0, size).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
