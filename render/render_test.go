package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/hex"
)

func testGrid(t *testing.T, size float64, radius int) *grid.Grid {
	t.Helper()
	f := hex.New(hex.Settings{Size: size})
	return grid.Hexagon(f, f.Hex(0, 0), radius)
}

func TestPNGBasic(t *testing.T) {
	g := testGrid(t, 12, 2)
	img, err := PNG(g, Options{})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Greater(t, bounds.Dx(), 0)
	assert.Greater(t, bounds.Dy(), 0)
	assert.LessOrEqual(t, bounds.Dx(), maxDim)
	assert.LessOrEqual(t, bounds.Dy(), maxDim)

	// the center cell is filled with the flat palette color
	min, _ := g.Bounds()
	cx := int(0 - min.X + defaultMargin)
	cy := int(0 - min.Y + defaultMargin)
	got := color.RGBAModel.Convert(img.At(cx, cy)).(color.RGBA)
	assert.Equal(t, toRGBA(mustHex("#74a7cf")), got)
}

func TestPNGDeterministic(t *testing.T) {
	g := testGrid(t, 10, 2)
	opts := Options{Palette: PaletteTerrain, Seed: 7, Labels: true}

	var a, b bytes.Buffer
	require.NoError(t, EncodePNG(&a, g, opts))
	require.NoError(t, EncodePNG(&b, g, opts))
	assert.True(t, bytes.Equal(a.Bytes(), b.Bytes()), "same options should render identical bytes")
}

func TestPNGTerrainSeedChangesOutput(t *testing.T) {
	g := testGrid(t, 10, 3)

	var a, b bytes.Buffer
	require.NoError(t, EncodePNG(&a, g, Options{Palette: PaletteTerrain, Seed: 1}))
	require.NoError(t, EncodePNG(&b, g, Options{Palette: PaletteTerrain, Seed: 99}))
	assert.False(t, bytes.Equal(a.Bytes(), b.Bytes()), "different seeds should change the landscape")
}

func TestPNGLabelsChangeOutput(t *testing.T) {
	g := testGrid(t, 14, 1)

	var plain, labeled bytes.Buffer
	require.NoError(t, EncodePNG(&plain, g, Options{}))
	require.NoError(t, EncodePNG(&labeled, g, Options{Labels: true}))
	assert.False(t, bytes.Equal(plain.Bytes(), labeled.Bytes()))
}

func TestPNGSupersampleKeepsDimensions(t *testing.T) {
	g := testGrid(t, 10, 1)

	base, err := PNG(g, Options{})
	require.NoError(t, err)
	smooth, err := PNG(g, Options{Supersample: 2})
	require.NoError(t, err)

	assert.Equal(t, base.Bounds(), smooth.Bounds())
}

func TestPNGErrors(t *testing.T) {
	f := hex.New(hex.Settings{})
	empty := grid.New(f)

	_, err := PNG(empty, Options{})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = PNG(nil, Options{})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	g := testGrid(t, 100, 30)
	_, err = PNG(g, Options{})
	assert.ErrorIs(t, err, ErrImageTooLarge)

	g = testGrid(t, 10, 1)
	_, err = PNG(g, Options{Palette: "plasma"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown palette")

	_, err = PNG(g, Options{Background: "#zz0000"})
	assert.Error(t, err)
}

func TestDistancePaletteShadesOutward(t *testing.T) {
	g := testGrid(t, 10, 2)
	colorOf, err := newPalette(g, Options{Palette: PaletteDistance})
	require.NoError(t, err)

	f := g.Factory()
	center := colorOf(f.Hex(0, 0))
	edge := colorOf(f.FromAxial(hex.Axial{Q: 2, R: 0}))
	assert.NotEqual(t, center, edge, "distance palette should vary with distance")

	// equidistant cells share a color
	a := colorOf(f.FromAxial(hex.Axial{Q: 2, R: 0}))
	b := colorOf(f.FromAxial(hex.Axial{Q: 0, R: 2}))
	assert.Equal(t, a, b)
}

func TestTerrainClass(t *testing.T) {
	cases := map[float64]string{
		-0.5:  "water",
		-0.2:  "sand",
		0.0:   "plains",
		0.3:   "forest",
		0.6:   "mountain",
		-0.25: "sand",
		0.4:   "mountain",
	}
	for v, want := range cases {
		assert.Equal(t, want, terrainClass(v), "noise %v", v)
	}
	for _, class := range []string{"water", "sand", "plains", "forest", "mountain"} {
		_, ok := terrainColors[class]
		assert.True(t, ok, "class %s has no color", class)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c)

	c, err = parseHexColor("0000ff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c)

	c, err = parseHexColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 128}, c)

	for _, bad := range []string{"", "#ff00", "#gggggg", "#1234567"} {
		_, err := parseHexColor(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestInsideHex(t *testing.T) {
	const size = 10.0

	// pointy: flat sides left/right, corners top/bottom
	assert.True(t, insideHex(0, 0, size, true))
	assert.True(t, insideHex(0, size*0.99, size, true))
	assert.False(t, insideHex(0, size*1.01, size, true))
	assert.True(t, insideHex(size*0.85, 0, size, true))
	assert.False(t, insideHex(size*0.9, 0, size, true))

	// flat: corners left/right, flat sides top/bottom
	assert.True(t, insideHex(size*0.99, 0, size, false))
	assert.False(t, insideHex(size*1.01, 0, size, false))
	assert.True(t, insideHex(0, size*0.85, size, false))
	assert.False(t, insideHex(0, size*0.9, size, false))
}

func TestSVG(t *testing.T) {
	g := testGrid(t, 15, 2)
	data, err := SVG(g, Options{})
	require.NoError(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "<svg "))
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))
	assert.Equal(t, 19, strings.Count(doc, "<polygon"), "one polygon per cell")
	assert.Contains(t, doc, `fill="#ffffff"`)
	assert.NotContains(t, doc, "<text")

	labeled, err := SVG(g, Options{Labels: true})
	require.NoError(t, err)
	assert.Equal(t, 19, strings.Count(string(labeled), "<text"))
	assert.Contains(t, string(labeled), ">0,0</text>")

	again, err := SVG(g, Options{})
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, again), "SVG output should be deterministic")
}

func TestSVGErrors(t *testing.T) {
	f := hex.New(hex.Settings{})
	_, err := SVG(grid.New(f), Options{})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	g := testGrid(t, 10, 1)
	_, err = SVG(g, Options{Palette: "nope"})
	assert.Error(t, err)
}

func TestSaveToTempFiles(t *testing.T) {
	g := testGrid(t, 10, 1)
	dir := t.TempDir()

	pngPath := dir + "/out.png"
	require.NoError(t, SavePNG(g, Options{}, pngPath))

	svgPath := dir + "/out.svg"
	require.NoError(t, SaveSVG(g, Options{}, svgPath))
}
