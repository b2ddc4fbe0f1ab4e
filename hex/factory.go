package hex

import (
	"github.com/gravitas-015/hexgrid"
	"github.com/gravitas-015/hexgrid/point"
)

// DefaultSize is the hex radius used when Settings leaves Size unset.
const DefaultSize = 1.0

// epsilon is the nudge offset applied to break rounding ties on cell
// borders.
const epsilon = 1e-6

// Settings configures a Factory. The zero value yields the library
// default: pointy orientation, size 1, origin at (0,0), no shared
// properties.
type Settings struct {
	Orientation hexgrid.Orientation
	Size        float64
	Origin      point.Point
	Props       Props
}

// proto is the shared prototype record every hex built by one factory
// points at. It never changes after New, so sharing it by pointer is
// safe.
type proto struct {
	orientation hexgrid.Orientation
	size        float64
	origin      point.Point
	props       Props
}

// The accessors tolerate a nil receiver so that the zero Hex behaves
// like a default-factory hex.

func (p *proto) getOrientation() hexgrid.Orientation {
	if p == nil {
		return hexgrid.Pointy
	}
	return p.orientation
}

func (p *proto) getSize() float64 {
	if p == nil {
		return DefaultSize
	}
	return p.size
}

func (p *proto) getOrigin() point.Point {
	if p == nil {
		return point.Point{}
	}
	return p.origin
}

// mergeProps layers call-site properties over the prototype defaults,
// last write wins. Coordinate keys are skipped; a result with no entries
// comes back as nil.
func (p *proto) mergeProps(call Props) Props {
	var base Props
	if p != nil {
		base = p.props
	}
	if len(base) == 0 && len(call) == 0 {
		return nil
	}
	merged := make(Props, len(base)+len(call))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range call {
		if isCoordKey(k) {
			continue
		}
		merged[k] = v
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

// Factory builds hexes that share one prototype. A Factory is immutable
// and safe for concurrent use.
type Factory struct {
	proto *proto
}

// Default is a ready-made factory with the default settings.
var Default = New(Settings{})

// New creates a hex factory from s. A non-positive Size falls back to
// DefaultSize, and coordinate keys in s.Props are ignored.
func New(s Settings) *Factory {
	size := s.Size
	if size <= 0 {
		size = DefaultSize
	}
	p := &proto{
		orientation: s.Orientation,
		size:        size,
		origin:      s.Origin,
	}
	if len(s.Props) > 0 {
		p.props = make(Props, len(s.Props))
		for k, v := range s.Props {
			if isCoordKey(k) {
				continue
			}
			p.props[k] = v
		}
	}
	return &Factory{proto: p}
}

// Orientation returns the orientation hexes of this factory are built
// with.
func (f *Factory) Orientation() hexgrid.Orientation { return f.proto.getOrientation() }

// Size returns the hex radius (center to corner) of this factory.
func (f *Factory) Size() float64 { return f.proto.getSize() }

// Origin returns the pixel offset subtracted from every ToPoint result.
func (f *Factory) Origin() point.Point { return f.proto.getOrigin() }

// Hex builds a hex from up to two cube coordinates:
//
//	Hex()        -> 0,0
//	Hex(x)       -> x,x
//	Hex(x, y)    -> x,y
//	Hex(x, y, z) -> x,y (z and later entries are ignored)
//
// The third coordinate is always recomputed as -(x+y), so the cube
// invariant holds no matter what was passed. Use Exact to reject an
// inconsistent triple instead.
func (f *Factory) Hex(coords ...float64) Hex {
	var x, y float64
	var hasX, hasY bool
	if len(coords) > 0 {
		x, hasX = coords[0], true
	}
	if len(coords) > 1 {
		y, hasY = coords[1], true
	}
	return newHex(f.proto, x, y, hasX, hasY, nil)
}

// FromSlice builds a hex from the first two entries of coords, following
// the same inference rules as Hex. Properties never travel through this
// form.
func (f *Factory) FromSlice(coords []float64) Hex {
	return f.Hex(coords...)
}

// FromProps builds a hex from a property map. Numeric "x" and "y"
// entries become coordinates (a missing one copies the other, both
// missing default to zero); every remaining entry is attached as a
// custom property over the factory defaults. A non-numeric coordinate
// entry counts as missing.
func (f *Factory) FromProps(props Props) Hex {
	x, hasX := numericProp(props, "x")
	y, hasY := numericProp(props, "y")
	return newHex(f.proto, x, y, hasX, hasY, props)
}

// FromAxial builds the hex at axial position a.
func (f *Factory) FromAxial(a Axial) Hex {
	return f.Hex(a.Q, -a.Q-a.R)
}

// FromCube builds a hex from c.X and c.Y; c.Z is recomputed, not
// trusted. Use Exact when an inconsistent input should be an error.
func (f *Factory) FromCube(c Cube) Hex {
	return f.Hex(c.X, c.Y)
}

// Exact builds a hex from a full cube triple and rejects triples that do
// not satisfy x+y+z=0 with an *InconsistentCoordsError. The check is an
// exact float comparison; fractional triples that only sum to zero
// approximately belong with FromCube.
func (f *Factory) Exact(x, y, z float64) (Hex, error) {
	if x+y+z != 0 {
		return Hex{}, &InconsistentCoordsError{X: x, Y: y, Z: z}
	}
	return f.Hex(x, y), nil
}

// Clone builds an independent copy of h bound to this factory's
// prototype. Coordinates and custom properties carry over; later changes
// to either hex do not affect the other.
func (f *Factory) Clone(h Hex) Hex {
	return newHex(f.proto, h.X, h.Y, true, true, h.props)
}

// newHex is the single construction funnel. Every factory method and
// every deriving operation ends up here, so inference, negative-zero
// cleanup and the invariant live in one place.
func newHex(p *proto, x, y float64, hasX, hasY bool, call Props) Hex {
	switch {
	case hasX && hasY:
	case hasX:
		y = x
	case hasY:
		x = y
	default:
		x, y = 0, 0
	}
	x = normZero(x)
	y = normZero(y)
	z := normZero(-(x + y))
	return Hex{X: x, Y: y, Z: z, proto: p, props: p.mergeProps(call)}
}

// normZero collapses IEEE negative zero to positive zero so coordinate
// strings and comparisons stay stable.
func normZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func isCoordKey(k string) bool {
	return k == "x" || k == "y" || k == "z"
}

// numericProp reads props[key] as a float64. The common integer and
// float widths are accepted; any other type counts as absent.
func numericProp(props Props, key string) (float64, bool) {
	v, ok := props[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func copyProps(p Props) Props {
	if len(p) == 0 {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
