package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
)

const cellWidth = 6

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color("#000000"))
	labelStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Right).
			Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Terminal renders pc's positional bonuses for one phase as a colored grid,
// rank 8 at the top.
func Terminal(vt *psqt.VariantTable, pc board.Piece, ph variant.Phase) string {
	vals := Values(vt, pc, ph, true)
	limit := maxAbs(vals)

	phase := "mg"
	if ph == variant.EG {
		phase = "eg"
	}
	lines := []string{titleStyle.Render(vt.Variant.String() + " " + pc.Name() + " " + phase)}

	for rank := 7; rank >= 0; rank-- {
		cells := []string{labelStyle.Render(strconv.Itoa(rank + 1))}
		for file := 0; file < 8; file++ {
			v := vals[board.NewSquare(file, rank)]
			style := cellStyle.Background(lipgloss.Color(hex(heat(v, limit))))
			cells = append(cells, style.Render(strconv.Itoa(v)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	files := []string{labelStyle.Render("")}
	for file := 0; file < 8; file++ {
		files = append(files, labelStyle.Render(string(rune('a'+file))))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, files...))

	if s, ok := vt.InHand(pc); ok {
		lines = append(lines, "in hand: "+s.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
