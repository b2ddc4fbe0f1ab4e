package render

import (
	"image/color"
	"image/draw"
)

// glyphs is a 3x5 pixel font covering the characters that appear in a
// hex's "x,y" form.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
	'-': {"000", "000", "111", "000", "000"},
	'.': {"000", "000", "000", "000", "010"},
}

var labelColor = color.RGBA{30, 30, 30, 255}

const (
	glyphWidth  = 4 // 3 pixels plus spacing
	glyphHeight = 5
)

// drawLabel renders text centered on (cx, cy) using the pixel font.
// Characters outside the font are left as gaps.
func drawLabel(img draw.Image, cx, cy int, text string) {
	bounds := img.Bounds()
	width := len(text)*glyphWidth - 1
	x := cx - width/2
	y := cy - glyphHeight/2

	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			x += glyphWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				px, py := x+col, y+row
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					img.Set(px, py, labelColor)
				}
			}
		}
		x += glyphWidth
	}
}
