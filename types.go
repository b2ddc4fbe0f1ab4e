package hexgrid

import (
	"fmt"
	"strings"
)

// Orientation selects how hexes sit on the plane: Pointy hexes have a
// corner at the top, Flat hexes have an edge at the top.
type Orientation int

const (
	Pointy Orientation = 0
	Flat   Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Pointy:
		return "pointy"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// IsValid reports whether o is one of the defined orientations.
func (o Orientation) IsValid() bool {
	return o == Pointy || o == Flat
}

// ParseOrientation converts a config/CLI string into an Orientation.
// Matching is case-insensitive; the empty string maps to Pointy, the
// library default.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "", "pointy":
		return Pointy, nil
	case "flat":
		return Flat, nil
	default:
		return Pointy, fmt.Errorf("unknown orientation %q", s)
	}
}
