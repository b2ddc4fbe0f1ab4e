package hex

import "math"

// derive constructs a new hex with h's prototype and custom properties
// at the given x and y. Operations below all build their results through
// it, which keeps z derived and negative zeros out.
func (h Hex) derive(x, y float64) Hex {
	return newHex(h.proto, x, y, true, true, h.props)
}

// Add returns h+o by component-wise cube addition. The result keeps h's
// prototype and custom properties.
func (h Hex) Add(o Hex) Hex {
	return h.derive(h.X+o.X, h.Y+o.Y)
}

// Subtract returns h-o by component-wise cube subtraction. The result
// keeps h's prototype and custom properties.
func (h Hex) Subtract(o Hex) Hex {
	return h.derive(h.X-o.X, h.Y-o.Y)
}

// Neighbor returns the adjacent hex one step in the given direction.
// Directions index the table counter-clockwise from east and wrap
// modulo 6.
func (h Hex) Neighbor(direction int) Hex {
	d := Directions[((direction%6)+6)%6]
	c := d.ToCube()
	return h.derive(h.X+c.X, h.Y+c.Y)
}

// Round snaps fractional cube coordinates to the nearest whole cell:
// each coordinate is rounded to the nearest integer, then the one that
// moved furthest is recomputed from the other two so the triple still
// sums to zero. Rounding a whole-cell hex returns it unchanged.
func (h Hex) Round() Hex {
	rx := math.Round(h.X)
	ry := math.Round(h.Y)
	rz := math.Round(h.Z)
	dx := math.Abs(rx - h.X)
	dy := math.Abs(ry - h.Y)
	dz := math.Abs(rz - h.Z)
	if dx > dy && dx > dz {
		rx = -(ry + rz)
	} else if dy > dz {
		ry = -(rx + rz)
	}
	// a z repair needs no branch: derive recomputes z from x and y
	return h.derive(rx, ry)
}

// Lerp linearly interpolates from h to o by t, leaving fractional
// coordinates as they fall; combine with Round to land on a cell. t=0
// returns h's coordinates exactly and t=1 returns o's.
func (h Hex) Lerp(o Hex, t float64) Hex {
	x := (1-t)*h.X + t*o.X
	y := (1-t)*h.Y + t*o.Y
	return h.derive(x, y)
}

// Nudge shifts the hex by a tiny epsilon so that points sitting exactly
// on a cell border round consistently to one side.
func (h Hex) Nudge() Hex {
	return h.derive(h.X+epsilon, h.Y+epsilon)
}

// Distance returns the hex distance between h and o, the number of steps
// between their cells.
func (h Hex) Distance(o Hex) float64 {
	dx := math.Abs(h.X - o.X)
	dy := math.Abs(h.Y - o.Y)
	dz := math.Abs(h.Z - o.Z)
	if dx > dy && dx > dz {
		return dx
	}
	if dy > dz {
		return dy
	}
	return dz
}
