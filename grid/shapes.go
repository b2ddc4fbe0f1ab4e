package grid

import (
	"math"

	"github.com/gravitas-015/hexgrid"
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/utils"
)

// Hexagon returns the filled hexagonal grid of the given radius around
// center: every cell at distance <= radius, 1+3*radius*(radius+1) in
// total. A negative radius is treated as zero.
func Hexagon(f *hex.Factory, center hex.Hex, radius int) *Grid {
	radius = utils.Max(radius, 0)
	g := New(f)
	c := center.ToAxial()
	for q := -radius; q <= radius; q++ {
		lo := utils.Max(-radius, -q-radius)
		hi := utils.Min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			g.Add(f.FromAxial(c.Add(hex.Axial{Q: float64(q), R: float64(r)})))
		}
	}
	return g
}

// Ring returns the cells at exact distance radius from center, walking
// the six sides from the south-east corner. Radius zero (or less) yields
// just the center cell.
func Ring(f *hex.Factory, center hex.Hex, radius int) *Grid {
	g := New(f)
	appendRing(g, f, center, radius)
	return g
}

// Spiral returns the cells within radius of center ordered center-out:
// the center first, then each ring from 1 to radius. The cell set equals
// Hexagon's, only the order differs.
func Spiral(f *hex.Factory, center hex.Hex, radius int) *Grid {
	g := New(f)
	g.Add(center)
	for k := 1; k <= radius; k++ {
		appendRing(g, f, center, k)
	}
	return g
}

// appendRing adds the ring at distance k around center to g, starting
// from center + dir[4]*k and traversing the six sides in direction
// order.
func appendRing(g *Grid, f *hex.Factory, center hex.Hex, k int) {
	if k <= 0 {
		g.Add(center)
		return
	}
	cur := center.ToAxial().Add(hex.Directions[4].Mul(float64(k)))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			g.Add(f.FromAxial(cur))
			cur = cur.Add(hex.Directions[side])
		}
	}
}

// Rectangle returns a visually rectangular block of width x height cells
// anchored at start's cell, rows running down for pointy factories and
// columns running right for flat ones. Axial rows are offset every other
// line to keep the outline straight.
func Rectangle(f *hex.Factory, width, height int, start hex.Hex) *Grid {
	g := New(f)
	s := start.ToAxial()
	if f.Orientation() == hexgrid.Pointy {
		for r := 0; r < height; r++ {
			off := r >> 1
			for q := -off; q < width-off; q++ {
				g.Add(f.FromAxial(s.Add(hex.Axial{Q: float64(q), R: float64(r)})))
			}
		}
		return g
	}
	for q := 0; q < width; q++ {
		off := q >> 1
		for r := -off; r < height-off; r++ {
			g.Add(f.FromAxial(s.Add(hex.Axial{Q: float64(q), R: float64(r)})))
		}
	}
	return g
}

// Parallelogram returns the width x height parallelogram spanned by the
// axial q and r axes from start's cell.
func Parallelogram(f *hex.Factory, width, height int, start hex.Hex) *Grid {
	g := New(f)
	s := start.ToAxial()
	for q := 0; q < width; q++ {
		for r := 0; r < height; r++ {
			g.Add(f.FromAxial(s.Add(hex.Axial{Q: float64(q), R: float64(r)})))
		}
	}
	return g
}

// Triangle returns the triangular wedge with the given side length from
// start's cell, size*(size+1)/2 cells in total.
func Triangle(f *hex.Factory, size int, start hex.Hex) *Grid {
	g := New(f)
	s := start.ToAxial()
	for q := 0; q < size; q++ {
		for r := 0; r < size-q; r++ {
			g.Add(f.FromAxial(s.Add(hex.Axial{Q: float64(q), R: float64(r)})))
		}
	}
	return g
}

// Line returns the contiguous cells from one hex to another, endpoints
// included. Both endpoints are nudged off cell borders before sampling
// the interpolation so ties round consistently; the result holds
// distance+1 cells for whole-cell endpoints.
func Line(f *hex.Factory, from, to hex.Hex) *Grid {
	g := New(f)
	steps := int(math.Round(from.Distance(to)))
	if steps == 0 {
		g.Add(from)
		return g
	}
	a := from.Nudge()
	b := to.Nudge()
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.Add(a.Lerp(b, t).Round())
	}
	return g
}
