package grid

import (
	"math"
	"testing"

	"github.com/gravitas-015/hexgrid"
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/point"
)

func TestNewDefaults(t *testing.T) {
	g := New(nil)
	if g.Factory() != hex.Default {
		t.Error("nil factory should fall back to hex.Default")
	}
	if g.Len() != 0 {
		t.Errorf("new grid Len = %d", g.Len())
	}
}

func TestAddSkipsDuplicates(t *testing.T) {
	f := hex.New(hex.Settings{})
	g := New(f)
	g.Add(f.Hex(1, 2), f.Hex(1, 2), f.Hex(3, 4))
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
}

func TestSetReplaces(t *testing.T) {
	f := hex.New(hex.Settings{})
	g := New(f)
	g.Add(f.FromProps(hex.Props{"x": 1, "y": 2, "terrain": "plains"}))

	g.Set(f.FromProps(hex.Props{"x": 1, "y": 2, "terrain": "forest"}))
	if g.Len() != 1 {
		t.Fatalf("Len = %d after Set on an existing cell", g.Len())
	}
	stored, ok := g.Get(1, 2)
	if !ok {
		t.Fatal("cell went missing")
	}
	if v, _ := stored.Prop("terrain"); v != "forest" {
		t.Errorf("terrain = %v, want forest", v)
	}
}

func TestGetAndContains(t *testing.T) {
	f := hex.New(hex.Settings{})
	g := New(f)
	h := f.FromProps(hex.Props{"x": 2, "y": -1, "label": "keep"})
	g.Add(h)

	if !g.Contains(f.Hex(2, -1)) {
		t.Error("Contains missed a stored cell")
	}
	if g.Contains(f.Hex(9, 9)) {
		t.Error("Contains found a cell that was never added")
	}

	stored, ok := g.GetHex(f.Hex(2, -1))
	if !ok {
		t.Fatal("GetHex missed a stored cell")
	}
	if v, _ := stored.Prop("label"); v != "keep" {
		t.Errorf("stored props lost: label = %v", v)
	}
	if _, ok := g.Get(0, 0); ok {
		t.Error("Get found a missing cell")
	}
}

func TestHexagonShape(t *testing.T) {
	f := hex.New(hex.Settings{})
	for radius := 0; radius <= 3; radius++ {
		g := Hexagon(f, f.Hex(0, 0), radius)
		want := 1 + 3*radius*(radius+1)
		if g.Len() != want {
			t.Errorf("radius %d: Len = %d, want %d", radius, g.Len(), want)
		}
		center := f.Hex(0, 0)
		g.Each(func(h hex.Hex) {
			if d := center.Distance(h); d > float64(radius) {
				t.Errorf("radius %d: cell %v at distance %v", radius, h, d)
			}
		})
		if !g.Contains(center) {
			t.Errorf("radius %d: center missing", radius)
		}
	}
}

func TestHexagonOffCenter(t *testing.T) {
	f := hex.New(hex.Settings{})
	center := f.Hex(3, -1)
	g := Hexagon(f, center, 2)
	if g.Len() != 19 {
		t.Errorf("Len = %d, want 19", g.Len())
	}
	g.Each(func(h hex.Hex) {
		if center.Distance(h) > 2 {
			t.Errorf("cell %v outside radius", h)
		}
	})
}

func TestRingShape(t *testing.T) {
	f := hex.New(hex.Settings{})
	center := f.Hex(0, 0)

	for radius := 1; radius <= 3; radius++ {
		g := Ring(f, center, radius)
		if g.Len() != 6*radius {
			t.Errorf("radius %d: Len = %d, want %d", radius, g.Len(), 6*radius)
		}
		g.Each(func(h hex.Hex) {
			if d := center.Distance(h); d != float64(radius) {
				t.Errorf("radius %d: cell %v at distance %v", radius, h, d)
			}
		})
	}

	if g := Ring(f, center, 0); g.Len() != 1 || !g.Contains(center) {
		t.Error("radius 0 ring should be just the center")
	}
}

func TestSpiralShape(t *testing.T) {
	f := hex.New(hex.Settings{})
	center := f.Hex(0, 0)
	g := Spiral(f, center, 2)

	if g.Len() != 19 {
		t.Fatalf("Len = %d, want 19", g.Len())
	}
	if !g.At(0).Equals(center) {
		t.Error("spiral should start at the center")
	}
	for i := 1; i <= 6; i++ {
		if d := center.Distance(g.At(i)); d != 1 {
			t.Errorf("cell %d at distance %v, want 1", i, d)
		}
	}
	for i := 7; i < 19; i++ {
		if d := center.Distance(g.At(i)); d != 2 {
			t.Errorf("cell %d at distance %v, want 2", i, d)
		}
	}

	// same cells as the filled hexagon, different order
	hexagon := Hexagon(f, center, 2)
	hexagon.Each(func(h hex.Hex) {
		if !g.Contains(h) {
			t.Errorf("spiral missing %v", h)
		}
	})
}

func TestRectangleShape(t *testing.T) {
	pointy := hex.New(hex.Settings{})
	g := Rectangle(pointy, 4, 3, pointy.Hex(0, 0))
	if g.Len() != 12 {
		t.Errorf("pointy 4x3: Len = %d, want 12", g.Len())
	}
	if !g.Contains(pointy.Hex(0, 0)) {
		t.Error("start cell missing")
	}

	flat := hex.New(hex.Settings{Orientation: hexgrid.Flat})
	g = Rectangle(flat, 4, 3, flat.Hex(0, 0))
	if g.Len() != 12 {
		t.Errorf("flat 4x3: Len = %d, want 12", g.Len())
	}
}

func TestParallelogramShape(t *testing.T) {
	f := hex.New(hex.Settings{})
	g := Parallelogram(f, 3, 5, f.Hex(0, 0))
	if g.Len() != 15 {
		t.Errorf("Len = %d, want 15", g.Len())
	}
}

func TestTriangleShape(t *testing.T) {
	f := hex.New(hex.Settings{})
	for size := 1; size <= 4; size++ {
		g := Triangle(f, size, f.Hex(0, 0))
		want := size * (size + 1) / 2
		if g.Len() != want {
			t.Errorf("size %d: Len = %d, want %d", size, g.Len(), want)
		}
	}
}

func TestLine(t *testing.T) {
	f := hex.New(hex.Settings{})
	from := f.Hex(0, 0)
	to := f.Hex(4, -2)

	g := Line(f, from, to)
	if g.Len() != 5 {
		t.Fatalf("Len = %d, want distance+1 = 5", g.Len())
	}
	if !g.At(0).Equals(from) {
		t.Errorf("line starts at %v", g.At(0))
	}
	if !g.At(g.Len() - 1).Equals(to) {
		t.Errorf("line ends at %v", g.At(g.Len()-1))
	}
	for i := 1; i < g.Len(); i++ {
		if d := g.At(i - 1).Distance(g.At(i)); d != 1 {
			t.Errorf("step %d has distance %v", i, d)
		}
	}
}

func TestLineSameCell(t *testing.T) {
	f := hex.New(hex.Settings{})
	g := Line(f, f.Hex(2, -1), f.Hex(2, -1))
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
}

func TestLineIsContiguousEverywhere(t *testing.T) {
	f := hex.New(hex.Settings{})
	from := f.Hex(-2, 3)
	targets := [][2]float64{{3, -3}, {0, 4}, {-5, 1}, {2, 2}}
	for _, c := range targets {
		to := f.Hex(c[0], c[1])
		g := Line(f, from, to)
		want := int(from.Distance(to)) + 1
		if g.Len() != want {
			t.Errorf("to %v: Len = %d, want %d", to, g.Len(), want)
		}
		for i := 1; i < g.Len(); i++ {
			if d := g.At(i - 1).Distance(g.At(i)); d != 1 {
				t.Errorf("to %v: step %d distance %v", to, i, d)
			}
		}
	}
}

func TestNeighbors(t *testing.T) {
	f := hex.New(hex.Settings{})
	g := Hexagon(f, f.Hex(0, 0), 2)

	inner := g.Neighbors(f.Hex(0, 0))
	if len(inner) != 6 {
		t.Errorf("interior neighbors = %d, want 6", len(inner))
	}
	for _, n := range inner {
		if d := f.Hex(0, 0).Distance(n); d != 1 {
			t.Errorf("neighbor %v at distance %v", n, d)
		}
	}

	// a corner of the hexagon has only three stored neighbors
	corner := f.FromAxial(hex.Axial{Q: 2, R: 0})
	if got := g.Neighbors(corner); len(got) != 3 {
		t.Errorf("corner neighbors = %d, want 3", len(got))
	}
}

func TestHexAt(t *testing.T) {
	f := hex.New(hex.Settings{Size: 10})
	g := Hexagon(f, f.Hex(0, 0), 1)

	h, ok := g.HexAt(point.New(0, 0))
	if !ok || !h.Equals(f.Hex(0, 0)) {
		t.Errorf("HexAt(origin) = %v, %v", h, ok)
	}

	// far outside the grid: the cell still comes back, just unstored
	h, ok = g.HexAt(point.New(1000, 1000))
	if ok {
		t.Error("HexAt far outside the grid reported stored")
	}
	if g.Contains(h) {
		t.Error("computed cell should not be in the grid")
	}
}

func TestBounds(t *testing.T) {
	f := hex.New(hex.Settings{})
	g := New(f).Add(f.Hex(0, 0))

	min, max := g.Bounds()
	wantHalfW := math.Sqrt(3) / 2
	if math.Abs(min.X+wantHalfW) > 1e-9 || math.Abs(max.X-wantHalfW) > 1e-9 {
		t.Errorf("x bounds = %v .. %v", min.X, max.X)
	}
	if min.Y != -1 || max.Y != 1 {
		t.Errorf("y bounds = %v .. %v", min.Y, max.Y)
	}

	// growing the grid can only widen the box
	g2 := Hexagon(f, f.Hex(0, 0), 2)
	min2, max2 := g2.Bounds()
	if min2.X > min.X || max2.X < max.X || min2.Y > min.Y || max2.Y < max.Y {
		t.Error("larger grid produced a smaller bounding box")
	}

	empty := New(f)
	emin, emax := empty.Bounds()
	if emin != (point.Point{}) || emax != (point.Point{}) {
		t.Errorf("empty bounds = %v, %v", emin, emax)
	}
}

func TestFilterAndMap(t *testing.T) {
	f := hex.New(hex.Settings{})
	center := f.Hex(0, 0)
	g := Hexagon(f, center, 2)

	ring := g.Filter(func(h hex.Hex) bool { return center.Distance(h) == 2 })
	if ring.Len() != 12 {
		t.Errorf("filtered Len = %d, want 12", ring.Len())
	}

	labeled := g.Map(func(h hex.Hex) hex.Hex {
		return f.FromProps(hex.Props{"x": h.X, "y": h.Y, "seen": true})
	})
	if labeled.Len() != g.Len() {
		t.Errorf("mapped Len = %d, want %d", labeled.Len(), g.Len())
	}
	h, _ := labeled.Get(0, 0)
	if v, ok := h.Prop("seen"); !ok || v != true {
		t.Errorf("mapped prop = %v, %v", v, ok)
	}
}

func TestEachOrder(t *testing.T) {
	f := hex.New(hex.Settings{})
	g := New(f).Add(f.Hex(0, 0), f.Hex(1, 0), f.Hex(2, 0))
	var seen []string
	g.Each(func(h hex.Hex) { seen = append(seen, h.String()) })
	want := []string{"0,0", "1,0", "2,0"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("order = %v, want %v", seen, want)
		}
	}
}
