package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Placement is the piece layout of a position: what stands on each square
// and, for drop variants, how many pieces of each type a side holds.
type Placement struct {
	Board [SquareNB]Piece
	Hand  [ColorNB][PieceTypeNB]int
}

// NewPlacement returns an empty placement.
func NewPlacement() *Placement {
	p := &Placement{}
	for sq := range p.Board {
		p.Board[sq] = NoPiece
	}
	return p
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Placement) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.Board[sq]
}

// Put places pc on sq.
func (p *Placement) Put(pc Piece, sq Square) {
	p.Board[sq] = pc
}

// AddToHand records one more held piece of pc's type for pc's color.
func (p *Placement) AddToHand(pc Piece) {
	p.Hand[pc.Color()][pc.Type()]++
}

// HasHand reports whether either side holds any piece.
func (p *Placement) HasHand() bool {
	for c := range p.Hand {
		for _, n := range p.Hand[c] {
			if n > 0 {
				return true
			}
		}
	}
	return false
}

// ParsePlacement parses the board field of a FEN string. Anything after the
// first space is ignored. Crazyhouse holdings are accepted either in brackets
// ("...RNBQKBNR[Qp]") or as a ninth rank ("...RNBQKBNR/Qp"), and the "~"
// marker for promoted pieces is skipped.
func ParsePlacement(fen string) (*Placement, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("invalid FEN: empty")
	}
	field := fields[0]

	holdings := ""
	if i := strings.IndexByte(field, '['); i >= 0 {
		if !strings.HasSuffix(field, "]") {
			return nil, fmt.Errorf("invalid FEN: unterminated holdings in %q", field)
		}
		holdings = field[i+1 : len(field)-1]
		field = field[:i]
	}

	ranks := strings.Split(field, "/")
	switch {
	case len(ranks) == 9 && holdings == "":
		holdings = ranks[8]
		ranks = ranks[:8]
	case len(ranks) != 8:
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	p := NewPlacement()
	if err := parseRanks(p, ranks); err != nil {
		return nil, err
	}
	if err := parseHoldings(p, holdings); err != nil {
		return nil, err
	}
	return p, nil
}

func parseRanks(p *Placement, ranks []string) error {
	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c == '~' {
				continue
			}
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			p.Put(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}
	return nil
}

func parseHoldings(p *Placement, holdings string) error {
	if holdings == "-" {
		return nil
	}
	for j := 0; j < len(holdings); j++ {
		piece := PieceFromChar(holdings[j])
		if piece == NoPiece {
			return fmt.Errorf("invalid holdings character: %c", holdings[j])
		}
		p.AddToHand(piece)
	}
	return nil
}

// String returns the placement as a FEN board field, with holdings in
// brackets when any piece is held.
func (p *Placement) String() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.HasHand() {
		sb.WriteByte('[')
		for c := White; c <= Black; c++ {
			for _, pt := range PieceTypes {
				ch := pt.Char()
				if c == White {
					ch -= 'a' - 'A'
				}
				for n := 0; n < p.Hand[c][pt]; n++ {
					sb.WriteByte(ch)
				}
			}
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
