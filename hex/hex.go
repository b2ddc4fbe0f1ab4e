// Package hex implements cube-coordinate hexagons built by prototype
// factories. A factory fixes orientation, size, origin and default
// properties once; every hex it produces shares that prototype and
// satisfies the cube invariant x+y+z=0.
package hex

import (
	"strconv"
)

// Props holds the custom properties attached to a hex beyond its
// coordinates. The reserved keys "x", "y" and "z" are never stored.
type Props map[string]any

// Axial represents axial coordinates (q, r), with q = cube x and
// r = cube z.
type Axial struct {
	Q float64
	R float64
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X float64
	Y float64
	Z float64
}

// Directions for axial neighbors, counter-clockwise starting east.
var Directions = []Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k float64) Axial { return Axial{a.Q * k, a.R * k} }

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube {
	x := a.Q
	z := a.R
	y := -x - z
	return Cube{X: x, Y: y, Z: z}
}

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.X, R: c.Z} }

// Hex is a single hexagon in cube coordinates. Hexes are value objects:
// every operation returns a new Hex, except the pointer-receiver Set and
// SetHex. The zero value is the origin hex of a default prototype
// (pointy, size 1, zero origin).
//
// X, Y and Z are exported for direct reads; treat them as read-only and
// go through a factory or Set to obtain different coordinates.
type Hex struct {
	X float64
	Y float64
	Z float64

	proto *proto
	props Props
}

// Coordinates returns a snapshot of the cube coordinates. The result is
// a plain record detached from the hex.
func (h Hex) Coordinates() Cube {
	return Cube{X: h.X, Y: h.Y, Z: h.Z}
}

// ToAxial returns the axial form of the hex's coordinates.
func (h Hex) ToAxial() Axial {
	return Axial{Q: h.X, R: h.Z}
}

// Equals reports whether h and o occupy the same cell, comparing cube
// coordinates exactly.
func (h Hex) Equals(o Hex) bool {
	return h.X == o.X && h.Y == o.Y && h.Z == o.Z
}

// String renders the hex as "x,y" using the shortest exact decimal form
// of each coordinate. Grids use this form as their map key.
func (h Hex) String() string {
	return strconv.FormatFloat(h.X, 'f', -1, 64) + "," + strconv.FormatFloat(h.Y, 'f', -1, 64)
}

// Prop returns the custom property stored under key and whether it was
// present.
func (h Hex) Prop(key string) (any, bool) {
	v, ok := h.props[key]
	return v, ok
}

// Props returns a copy of the hex's custom properties, factory defaults
// included. Mutating the returned map does not affect the hex.
func (h Hex) Props() Props {
	return copyProps(h.props)
}

// Set replaces the receiver's data in place with the hex the same
// prototype would construct from coords, and returns the receiver.
// Custom properties held by the old value are dropped; prototype
// defaults reappear on the new value.
func (h *Hex) Set(coords ...float64) *Hex {
	var x, y float64
	var hasX, hasY bool
	if len(coords) > 0 {
		x, hasX = coords[0], true
	}
	if len(coords) > 1 {
		y, hasY = coords[1], true
	}
	*h = newHex(h.proto, x, y, hasX, hasY, nil)
	return h
}

// SetHex replaces the receiver's data in place with a copy of o, keeping
// the receiver's prototype and carrying o's custom properties.
func (h *Hex) SetHex(o Hex) *Hex {
	*h = newHex(h.proto, o.X, o.Y, true, true, o.props)
	return h
}
