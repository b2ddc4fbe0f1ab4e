// Package point provides the 2D cartesian companion type for hex/pixel
// conversions.
package point

import (
	"math"
	"strconv"
)

// Point is a position on the screen plane. The zero value is the origin.
type Point struct {
	X float64
	Y float64
}

// New returns the point (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromSlice builds a point from the first two entries of coords. Missing
// entries default to zero, extra entries are ignored.
func FromSlice(coords []float64) Point {
	var p Point
	if len(coords) > 0 {
		p.X = coords[0]
	}
	if len(coords) > 1 {
		p.Y = coords[1]
	}
	return p
}

// Add returns the component-wise sum p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Subtract returns the component-wise difference p - o.
func (p Point) Subtract(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Multiply returns the component-wise product of p and o.
func (p Point) Multiply(o Point) Point {
	return Point{X: p.X * o.X, Y: p.Y * o.Y}
}

// Divide returns the component-wise quotient p / o. Division follows
// float64 semantics, so a zero component in o yields an infinity or NaN.
func (p Point) Divide(o Point) Point {
	return Point{X: p.X / o.X, Y: p.Y / o.Y}
}

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Round returns p with both components rounded to the nearest integer.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// Length returns the euclidean distance from the origin to p.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Equals reports whether p and o have identical coordinates.
func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// String renders the point as "x,y" using the shortest exact decimal
// form of each component.
func (p Point) String() string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64)
}
