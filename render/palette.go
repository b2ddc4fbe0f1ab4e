package render

import (
	"fmt"
	"image/color"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/point"
	"github.com/gravitas-015/hexgrid/utils"
)

// Palette names accepted by Options.Palette.
const (
	PaletteFlat     = "flat"
	PaletteDistance = "distance"
	PaletteTerrain  = "terrain"
)

// newPalette resolves the palette option to a per-cell color function.
func newPalette(g *grid.Grid, opts Options) (func(hex.Hex) color.RGBA, error) {
	switch opts.Palette {
	case "", PaletteFlat:
		fill := toRGBA(mustHex("#74a7cf"))
		return func(hex.Hex) color.RGBA { return fill }, nil
	case PaletteDistance:
		return distancePalette(g), nil
	case PaletteTerrain:
		return terrainPalette(g, opts.Seed), nil
	default:
		return nil, fmt.Errorf("render: unknown palette %q", opts.Palette)
	}
}

// distancePalette shades cells by hex distance from the grid's middle
// cell, blending in Luv space so the gradient stays perceptually even.
// When no cell sits at the middle of the bounds (a ring, say), the first
// cell anchors the gradient instead.
func distancePalette(g *grid.Grid) func(hex.Hex) color.RGBA {
	bmin, bmax := g.Bounds()
	mid := point.New((bmin.X+bmax.X)/2, (bmin.Y+bmax.Y)/2)
	anchor, ok := g.HexAt(mid)
	if !ok {
		anchor = g.At(0)
	}
	maxDist := 0.0
	g.Each(func(h hex.Hex) {
		maxDist = utils.Max(maxDist, anchor.Distance(h))
	})
	near := mustHex("#edf8b1")
	far := mustHex("#2c7fb8")
	return func(h hex.Hex) color.RGBA {
		t := 0.0
		if maxDist > 0 {
			t = anchor.Distance(h) / maxDist
		}
		return toRGBA(near.BlendLuv(far, t).Clamped())
	}
}

var terrainColors = map[string]color.RGBA{
	"water":    {61, 110, 158, 255},
	"sand":     {227, 213, 163, 255},
	"plains":   {143, 188, 109, 255},
	"forest":   {65, 114, 76, 255},
	"mountain": {154, 163, 173, 255},
}

// terrainClass buckets a noise sample into a terrain name.
func terrainClass(v float64) string {
	switch {
	case v < -0.25:
		return "water"
	case v < -0.12:
		return "sand"
	case v < 0.18:
		return "plains"
	case v < 0.4:
		return "forest"
	default:
		return "mountain"
	}
}

// terrainPalette colors cells from a Perlin noise field sampled at each
// cell center. The same seed always produces the same landscape.
func terrainPalette(g *grid.Grid, seed int64) func(hex.Hex) color.RGBA {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	// a wavelength of a few cells keeps regions contiguous
	freq := 1 / (g.Factory().Size() * 4)
	return func(h hex.Hex) color.RGBA {
		c := h.ToPoint()
		v := noise.Noise2D(c.X*freq, c.Y*freq)
		return terrainColors[terrainClass(v)]
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
