package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SVG returns an 8x8 heatmap of pc's positional bonuses, cell pixels per
// square, rank 8 at the top.
func SVG(vt *psqt.VariantTable, pc board.Piece, ph variant.Phase, cell int) string {
	return svgGrid(Values(vt, pc, ph, true), cell)
}

func svgGrid(vals [board.SquareNB]int, cell int) string {
	limit := maxAbs(vals)
	size := cell * 8

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, size, size, size, size)
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			v := vals[board.NewSquare(file, rank)]
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				file*cell, (7-rank)*cell, cell, cell, hex(heat(v, limit)))
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

// PNG rasterises the SVG heatmap and writes each square's value on it.
func PNG(w io.Writer, vt *psqt.VariantTable, pc board.Piece, ph variant.Phase, cell int) error {
	vals := Values(vt, pc, ph, true)
	img, err := rasterise(svgGrid(vals, cell), cell*8)
	if err != nil {
		return err
	}
	label(img, vals, cell)
	return png.Encode(w, img)
}

func rasterise(svg string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// label centres each value in its square.
func label(img *image.RGBA, vals [board.SquareNB]int, cell int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	for sq, v := range vals {
		s := strconv.Itoa(v)
		file, rank := board.Square(sq).File(), board.Square(sq).Rank()
		width := d.MeasureString(s).Ceil()
		x := file*cell + (cell-width)/2
		y := (7-rank)*cell + (cell+face.Ascent)/2
		d.Dot = fixed.P(x, y)
		d.DrawString(s)
	}
}
