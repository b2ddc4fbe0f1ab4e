// Package grid provides an ordered, keyed collection of hexes produced
// by one factory, plus generators for the common grid shapes.
package grid

import (
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/point"
	"github.com/gravitas-015/hexgrid/utils"
)

// Grid is an insertion-ordered set of hexes keyed by their "x,y" string
// form. All hexes in a grid should come from the grid's factory so that
// layout queries agree with the stored cells.
type Grid struct {
	factory *hex.Factory
	hexes   []hex.Hex
	index   map[string]int
}

// New returns an empty grid bound to f. A nil factory falls back to
// hex.Default.
func New(f *hex.Factory) *Grid {
	if f == nil {
		f = hex.Default
	}
	return &Grid{
		factory: f,
		index:   make(map[string]int),
	}
}

// Factory returns the factory the grid was built with.
func (g *Grid) Factory() *hex.Factory { return g.factory }

// Len returns the number of hexes in the grid.
func (g *Grid) Len() int { return len(g.hexes) }

// Hexes returns the grid's backing slice in insertion order. The slice
// is shared with the grid; callers that need to mutate it should copy
// first.
func (g *Grid) Hexes() []hex.Hex { return g.hexes }

// At returns the hex at position i in insertion order.
func (g *Grid) At(i int) hex.Hex { return g.hexes[i] }

// Add appends hexes to the grid, skipping any whose cell is already
// present, and returns the grid.
func (g *Grid) Add(hs ...hex.Hex) *Grid {
	for _, h := range hs {
		key := h.String()
		if _, ok := g.index[key]; ok {
			continue
		}
		g.index[key] = len(g.hexes)
		g.hexes = append(g.hexes, h)
	}
	return g
}

// Set stores h, replacing the hex already occupying the same cell or
// appending when the cell is new, and returns the grid.
func (g *Grid) Set(h hex.Hex) *Grid {
	key := h.String()
	if i, ok := g.index[key]; ok {
		g.hexes[i] = h
		return g
	}
	g.index[key] = len(g.hexes)
	g.hexes = append(g.hexes, h)
	return g
}

// Contains reports whether the grid holds a hex in h's cell.
func (g *Grid) Contains(h hex.Hex) bool {
	_, ok := g.index[h.String()]
	return ok
}

// Get returns the stored hex at cube coordinates (x, y) and whether the
// cell is present.
func (g *Grid) Get(x, y float64) (hex.Hex, bool) {
	return g.GetHex(g.factory.Hex(x, y))
}

// GetHex returns the stored hex occupying h's cell and whether the cell
// is present. The stored instance carries whatever properties it was
// added with.
func (g *Grid) GetHex(h hex.Hex) (hex.Hex, bool) {
	if i, ok := g.index[h.String()]; ok {
		return g.hexes[i], true
	}
	return hex.Hex{}, false
}

// Each calls fn for every hex in insertion order.
func (g *Grid) Each(fn func(hex.Hex)) {
	for _, h := range g.hexes {
		fn(h)
	}
}

// Filter returns a new grid on the same factory holding the hexes for
// which pred is true.
func (g *Grid) Filter(pred func(hex.Hex) bool) *Grid {
	out := New(g.factory)
	for _, h := range g.hexes {
		if pred(h) {
			out.Add(h)
		}
	}
	return out
}

// Map returns a new grid on the same factory holding fn applied to each
// hex. Results landing on the same cell collapse, last write wins.
func (g *Grid) Map(fn func(hex.Hex) hex.Hex) *Grid {
	out := New(g.factory)
	for _, h := range g.hexes {
		out.Set(fn(h))
	}
	return out
}

// Neighbors returns the stored hexes adjacent to h, in direction-table
// order. Cells outside the grid are skipped.
func (g *Grid) Neighbors(h hex.Hex) []hex.Hex {
	out := make([]hex.Hex, 0, 6)
	for d := 0; d < 6; d++ {
		if stored, ok := g.GetHex(h.Neighbor(d)); ok {
			out = append(out, stored)
		}
	}
	return out
}

// HexAt converts a pixel position to its hex cell through the grid's
// factory. When the cell is stored the second return is true and the
// stored instance comes back; otherwise the freshly computed cell comes
// back with false.
func (g *Grid) HexAt(p point.Point) (hex.Hex, bool) {
	h := g.factory.FromPoint(p)
	if stored, ok := g.GetHex(h); ok {
		return stored, true
	}
	return h, false
}

// Bounds returns the pixel bounding box covering every hex in the grid,
// corners included. An empty grid yields two zero points.
func (g *Grid) Bounds() (min, max point.Point) {
	if len(g.hexes) == 0 {
		return point.Point{}, point.Point{}
	}
	probe := g.factory.Hex()
	halfW := probe.Width() / 2
	halfH := probe.Height() / 2
	first := g.hexes[0].ToPoint()
	min = point.New(first.X-halfW, first.Y-halfH)
	max = point.New(first.X+halfW, first.Y+halfH)
	for _, h := range g.hexes[1:] {
		c := h.ToPoint()
		min.X = utils.Min(min.X, c.X-halfW)
		min.Y = utils.Min(min.Y, c.Y-halfH)
		max.X = utils.Max(max.X, c.X+halfW)
		max.Y = utils.Max(max.Y, c.Y+halfH)
	}
	return min, max
}
