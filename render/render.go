// Package render rasterizes hex grids to PNG images and SVG documents.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/point"
	"github.com/gravitas-015/hexgrid/utils"
)

const (
	// maxDim bounds the rendered image side so a careless radius cannot
	// exhaust memory.
	maxDim = 4096

	defaultMargin = 8
)

var (
	ErrEmptyGrid     = errors.New("render: empty grid")
	ErrImageTooLarge = fmt.Errorf("render: image exceeds %dpx per side", maxDim)
)

// Options controls how a grid is drawn. The zero value renders the flat
// palette on a white background with dark outlines, no labels and no
// supersampling.
type Options struct {
	// Palette is one of PaletteFlat, PaletteDistance or PaletteTerrain.
	// Empty selects PaletteFlat.
	Palette string
	// Background and Stroke are "#RRGGBB" or "#RRGGBBAA" colors.
	Background string
	Stroke     string
	// Labels draws each cell's "x,y" form at its center.
	Labels bool
	// Supersample renders at N times the resolution and downscales with
	// a Lanczos filter. Values are clamped to [1, 4].
	Supersample int
	// Seed drives the terrain palette's noise field.
	Seed int64
	// Margin is the border around the grid bounds in pixels; zero means
	// the default of 8.
	Margin int
}

// PNG renders the grid to an image.
func PNG(g *grid.Grid, opts Options) (image.Image, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	colorOf, err := newPalette(g, opts)
	if err != nil {
		return nil, err
	}
	bg, err := optColor(opts.Background, color.RGBA{255, 255, 255, 255})
	if err != nil {
		return nil, fmt.Errorf("render: background: %w", err)
	}
	stroke, err := optColor(opts.Stroke, color.RGBA{40, 40, 40, 255})
	if err != nil {
		return nil, fmt.Errorf("render: stroke: %w", err)
	}

	scale := utils.Clamp(opts.Supersample, 1, 4)
	margin := opts.Margin
	if margin <= 0 {
		margin = defaultMargin
	}

	min, max := g.Bounds()
	w := int(math.Ceil(max.X-min.X)) + 2*margin
	h := int(math.Ceil(max.Y-min.Y)) + 2*margin
	if w*scale > maxDim || h*scale > maxDim {
		return nil, ErrImageTooLarge
	}

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	offset := point.New(float64(margin)-min.X, float64(margin)-min.Y)
	fs := float64(scale)

	g.Each(func(cell hex.Hex) {
		center := cell.ToPoint().Add(offset).Scale(fs)
		fillHex(img, cell, center, fs, colorOf(cell))
	})
	g.Each(func(cell hex.Hex) {
		center := cell.ToPoint().Add(offset).Scale(fs)
		strokeHex(img, cell, center, fs, stroke)
	})

	var out image.Image = img
	if scale > 1 {
		out = imaging.Resize(img, w, h, imaging.Lanczos)
	}
	if opts.Labels {
		dst, ok := out.(draw.Image)
		if !ok {
			rgba := image.NewRGBA(out.Bounds())
			draw.Draw(rgba, rgba.Bounds(), out, image.Point{}, draw.Src)
			dst = rgba
			out = rgba
		}
		g.Each(func(cell hex.Hex) {
			c := cell.ToPoint().Add(offset)
			drawLabel(dst, int(c.X), int(c.Y), cell.String())
		})
	}
	return out, nil
}

// EncodePNG renders the grid and writes it to w as PNG.
func EncodePNG(w io.Writer, g *grid.Grid, opts Options) error {
	img, err := PNG(g, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG renders the grid and writes it to path. The format follows the
// file extension, so a .jpg path produces a JPEG.
func SavePNG(g *grid.Grid, opts Options, path string) error {
	img, err := PNG(g, opts)
	if err != nil {
		return err
	}
	return imaging.Save(img, path)
}

// fillHex sets every pixel whose center falls inside the cell.
func fillHex(img *image.RGBA, cell hex.Hex, center point.Point, scale float64, col color.RGBA) {
	size := cell.Size() * scale
	halfW := cell.Width() / 2 * scale
	halfH := cell.Height() / 2 * scale
	pointy := cell.IsPointy()

	x0 := int(math.Floor(center.X - halfW))
	x1 := int(math.Ceil(center.X + halfW))
	y0 := int(math.Floor(center.Y - halfH))
	y1 := int(math.Ceil(center.Y + halfH))
	bounds := img.Bounds()
	x0 = utils.Max(x0, bounds.Min.X)
	y0 = utils.Max(y0, bounds.Min.Y)
	x1 = utils.Min(x1, bounds.Max.X-1)
	y1 = utils.Min(y1, bounds.Max.Y-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			dy := float64(y) + 0.5 - center.Y
			if insideHex(dx, dy, size, pointy) {
				img.Set(x, y, col)
			}
		}
	}
}

// insideHex tests a center-relative point against the three half-plane
// pairs of a regular hexagon with radius size.
func insideHex(dx, dy, size float64, pointy bool) bool {
	ax := math.Abs(dx)
	ay := math.Abs(dy)
	if pointy {
		// flat sides left and right, corners top and bottom
		return ax <= sqrt3/2*size && ay+ax/sqrt3 <= size
	}
	return ay <= sqrt3/2*size && ax+ay/sqrt3 <= size
}

var sqrt3 = math.Sqrt(3)

// strokeHex draws the cell outline corner to corner.
func strokeHex(img *image.RGBA, cell hex.Hex, center point.Point, scale float64, col color.RGBA) {
	corners := cell.Corners()
	for i := range corners {
		a := center.Add(corners[i].Scale(scale))
		b := center.Add(corners[(i+1)%6].Scale(scale))
		drawSegment(img, a, b, col)
	}
}

// drawSegment rasterizes a line by sampling one point per covered pixel
// along the longer axis.
func drawSegment(img *image.RGBA, a, b point.Point, col color.RGBA) {
	d := b.Subtract(a)
	steps := int(utils.Max(math.Abs(d.X), math.Abs(d.Y))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(a.X + d.X*t))
		y := int(math.Round(a.Y + d.Y*t))
		if image.Pt(x, y).In(img.Bounds()) {
			img.Set(x, y, col)
		}
	}
}

// optColor parses an optional "#RRGGBB[AA]" option value, falling back
// to def when the option is empty.
func optColor(s string, def color.RGBA) (color.RGBA, error) {
	if s == "" {
		return def, nil
	}
	return parseHexColor(s)
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(s) {
	case 6:
		val, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
