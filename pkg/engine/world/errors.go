package world

import "errors"

// ErrOutOfRange is returned when a coordinate falls outside the grid
var ErrOutOfRange = errors.New("world: position out of range")
