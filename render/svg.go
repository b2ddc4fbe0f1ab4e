package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/point"
)

// SVG renders the grid as a standalone SVG document. Colors follow the
// same options as PNG, except that alpha channels are dropped; Margin
// and the palette behave identically. Supersample has no effect on
// vector output.
func SVG(g *grid.Grid, opts Options) ([]byte, error) {
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

	margin := opts.Margin
	if margin <= 0 {
		margin = defaultMargin
	}
	min, max := g.Bounds()
	w := int(math.Ceil(max.X-min.X)) + 2*margin
	h := int(math.Ceil(max.Y-min.Y)) + 2*margin
	offset := point.New(float64(margin)-min.X, float64(margin)-min.Y)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", cssColor(bg))

	strokeCSS := cssColor(stroke)
	g.Each(func(cell hex.Hex) {
		center := cell.ToPoint().Add(offset)
		var pts strings.Builder
		for i, corner := range cell.Corners() {
			if i > 0 {
				pts.WriteByte(' ')
			}
			p := center.Add(corner)
			fmt.Fprintf(&pts, "%.2f,%.2f", p.X, p.Y)
		}
		fmt.Fprintf(&buf, `  <polygon points="%s" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			pts.String(), cssColor(colorOf(cell)), strokeCSS)
	})

	if opts.Labels {
		fontSize := g.Factory().Size() * 0.35
		g.Each(func(cell hex.Hex) {
			center := cell.ToPoint().Add(offset)
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-family="monospace" font-size="%.1f" text-anchor="middle" dominant-baseline="middle" fill="#1e1e1e">%s</text>`+"\n",
				center.X, center.Y, fontSize, cell.String())
		})
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// SaveSVG renders the grid and writes the document to path.
func SaveSVG(g *grid.Grid, opts Options, path string) error {
	data, err := SVG(g, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
