package sdf

import (
	"errors"
	"fmt"
)

// GeometryError reports a contour that does not close: edge Edge does not
// start where the previous edge ends.
type GeometryError struct {
	Contour int
	Edge    int
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("sdf: contour %d is not closed at edge %d", e.Contour, e.Edge)
}

// Errors returned by Rasterize.
var (
	// ErrInvalidRange is returned when the distance range is not positive.
	ErrInvalidRange = errors.New("sdf: range must be positive")

	// ErrInvalidScale is returned when the projection scale is not positive.
	ErrInvalidScale = errors.New("sdf: projection scale must be positive")
)
