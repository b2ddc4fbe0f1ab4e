package hex

import (
	"math"

	"github.com/gravitas-015/hexgrid"
	"github.com/gravitas-015/hexgrid/point"
)

var sqrt3 = math.Sqrt(3)

// Orientation returns the orientation the hex was built with.
func (h Hex) Orientation() hexgrid.Orientation { return h.proto.getOrientation() }

// IsPointy reports whether the hex has a corner at the top.
func (h Hex) IsPointy() bool { return h.Orientation() == hexgrid.Pointy }

// IsFlat reports whether the hex has an edge at the top.
func (h Hex) IsFlat() bool { return h.Orientation() == hexgrid.Flat }

// Size returns the hex radius (center to corner) in pixels.
func (h Hex) Size() float64 { return h.proto.getSize() }

// Origin returns the pixel offset the hex's factory subtracts in
// ToPoint.
func (h Hex) Origin() point.Point { return h.proto.getOrigin() }

// OppositeCornerDistance returns the diameter between two opposite
// corners: 2*size.
func (h Hex) OppositeCornerDistance() float64 {
	return 2 * h.Size()
}

// OppositeSideDistance returns the diameter between the midpoints of two
// opposite sides: sqrt(3)*size.
func (h Hex) OppositeSideDistance() float64 {
	return sqrt3 * h.Size()
}

// Width returns the horizontal extent of the hex: side-to-side when
// pointy, corner-to-corner when flat.
func (h Hex) Width() float64 {
	if h.IsPointy() {
		return h.OppositeSideDistance()
	}
	return h.OppositeCornerDistance()
}

// Height returns the vertical extent of the hex: corner-to-corner when
// pointy, side-to-side when flat.
func (h Hex) Height() float64 {
	if h.IsPointy() {
		return h.OppositeCornerDistance()
	}
	return h.OppositeSideDistance()
}

// Corners returns the six corner points relative to the hex center, in
// drawing order. Pointy corners start 30 degrees above the positive x
// axis, flat corners start on it.
func (h Hex) Corners() []point.Point {
	size := h.Size()
	offset := 0.0
	if h.IsPointy() {
		offset = -30
	}
	corners := make([]point.Point, 0, 6)
	for i := 0; i < 6; i++ {
		angle := (60*float64(i) + offset) * math.Pi / 180
		corners = append(corners, point.New(size*math.Cos(angle), size*math.Sin(angle)))
	}
	return corners
}

// ToPoint converts the hex to the pixel position of its center, shifted
// by the factory origin.
func (h Hex) ToPoint() point.Point {
	size := h.Size()
	var x, y float64
	if h.IsPointy() {
		// pointy-top: x = size*sqrt(3)*(q + r/2); y = size*3/2*r
		x = size * sqrt3 * (h.X + h.Z/2)
		y = size * 1.5 * h.Z
	} else {
		// flat-top: x = size*3/2*q; y = size*sqrt(3)*(r + q/2)
		x = size * 1.5 * h.X
		y = size * sqrt3 * (h.Z + h.X/2)
	}
	return point.New(x, y).Subtract(h.Origin())
}

// FromPoint converts a pixel position back to the hex containing it,
// inverting ToPoint for this factory's layout and rounding to the
// nearest cell.
func (f *Factory) FromPoint(p point.Point) Hex {
	size := f.Size()
	pt := p.Add(f.Origin())
	var x, z float64
	if f.Orientation() == hexgrid.Pointy {
		x = (sqrt3/3*pt.X - pt.Y/3) / size
		z = pt.Y * 2 / 3 / size
	} else {
		x = pt.X * 2 / 3 / size
		z = (sqrt3/3*pt.Y - pt.X/3) / size
	}
	return f.Hex(x, -x-z).Round()
}
