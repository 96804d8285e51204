// Package render draws a piece's table as a heatmap, either for a terminal
// or as an image.
package render

import (
	"fmt"
	"image/color"

	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
)

// Values extracts one phase of pc's row. With positional set the piece's
// material is removed so only the square bonus remains.
func Values(vt *psqt.VariantTable, pc board.Piece, ph variant.Phase, positional bool) [board.SquareNB]int {
	var out [board.SquareNB]int

	var material psqt.Score
	if positional {
		material = psqt.Material(vt.Variant, pc.Type())
		if pc.Color() == board.Black {
			material = -material
		}
	}

	row := vt.Row(pc)
	for sq, s := range row {
		s -= material
		if ph == variant.EG {
			out[sq] = s.Eg()
		} else {
			out[sq] = s.Mg()
		}
	}
	return out
}

func maxAbs(vals [board.SquareNB]int) int {
	m := 0
	for _, v := range vals {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

// heat maps v onto a blue-white-red scale, saturating at limit.
func heat(v, limit int) color.RGBA {
	if limit == 0 || v == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	t := float64(v) / float64(limit)
	if t > 1 {
		t = 1
	}
	if t < -1 {
		t = -1
	}
	fade := func(x float64) uint8 { return uint8(255 - 200*x) }
	if t > 0 {
		return color.RGBA{255, fade(t), fade(t), 255}
	}
	return color.RGBA{fade(-t), fade(-t), 255, 255}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
