package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not complete (nil graph or constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
