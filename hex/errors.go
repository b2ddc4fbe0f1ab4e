package hex

import "fmt"

// InconsistentCoordsError reports a cube triple whose components do not
// sum to zero. Returned by Factory.Exact.
type InconsistentCoordsError struct {
	X float64
	Y float64
	Z float64
}

func (e *InconsistentCoordsError) Error() string {
	return fmt.Sprintf("hex: coordinates (%v, %v, %v) sum to %v, want 0",
		e.X, e.Y, e.Z, e.X+e.Y+e.Z)
}
