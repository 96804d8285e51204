package board

import (
	"strings"
	"testing"

	"github.com/notnil/chess"
)

func TestEdgeDistance(t *testing.T) {
	want := [8]int{0, 1, 2, 3, 3, 2, 1, 0}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			if got := EdgeDistance(sq.File()); got != want[file] {
				t.Errorf("%s: edge distance %d, want %d", sq, got, want[file])
			}
		}
	}
}

func TestSquareFlips(t *testing.T) {
	tests := []struct {
		sq, rank, file Square
	}{
		{A1, A8, H1},
		{H8, H1, A8},
		{E2, E7, D2},
		{C6, C3, F6},
	}
	for _, tt := range tests {
		if got := tt.sq.FlipRank(); got != tt.rank {
			t.Errorf("%s.FlipRank() = %s, want %s", tt.sq, got, tt.rank)
		}
		if got := tt.sq.FlipFile(); got != tt.file {
			t.Errorf("%s.FlipFile() = %s, want %s", tt.sq, got, tt.file)
		}
	}
	for sq := A1; sq <= H8; sq++ {
		if sq.FlipRank().FlipRank() != sq || sq.FlipFile().FlipFile() != sq {
			t.Fatalf("%s: flips are not involutions", sq)
		}
	}
}

func TestPieceFlip(t *testing.T) {
	for pt := Pawn; pt <= King; pt++ {
		w := NewPiece(pt, White)
		b := NewPiece(pt, Black)
		if w.Flip() != b || b.Flip() != w {
			t.Errorf("%s: Flip gives %s and %s", pt, w.Flip(), b.Flip())
		}
	}
	if NoPiece.Flip() != NoPiece {
		t.Error("Expected NoPiece to flip to itself")
	}
}

func TestParsePiece(t *testing.T) {
	tests := []struct {
		in   string
		want Piece
		ok   bool
	}{
		{"N", WhiteKnight, true},
		{"q", BlackQueen, true},
		{"white-knight", WhiteKnight, true},
		{"Black_Queen", BlackQueen, true},
		{"x", NoPiece, false},
		{"purple-king", NoPiece, false},
	}
	for _, tt := range tests {
		got, ok := ParsePiece(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePiece(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParsePlacement(t *testing.T) {
	t.Run("StartPosition", func(t *testing.T) {
		p, err := ParsePlacement(StartFEN)
		if err != nil {
			t.Fatalf("ParsePlacement failed: %v", err)
		}
		if p.PieceAt(E1) != WhiteKing || p.PieceAt(D8) != BlackQueen || p.PieceAt(E4) != NoPiece {
			t.Errorf("Unexpected placement: %s", p)
		}
		if p.HasHand() {
			t.Error("Expected empty hands")
		}
		if got := p.String(); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR" {
			t.Errorf("String() = %s", got)
		}
	})

	t.Run("BracketHoldings", func(t *testing.T) {
		p, err := ParsePlacement("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R[Pp] w KQkq - 0 1")
		if err != nil {
			t.Fatalf("ParsePlacement failed: %v", err)
		}
		if p.Hand[White][Pawn] != 1 || p.Hand[Black][Pawn] != 1 {
			t.Errorf("Unexpected hands: %v", p.Hand)
		}
		if got := p.String(); got != "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R[Pp]" {
			t.Errorf("String() = %s", got)
		}
	})

	t.Run("NinthRankHoldings", func(t *testing.T) {
		p, err := ParsePlacement("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR/QNnn w KQkq - 0 1")
		if err != nil {
			t.Fatalf("ParsePlacement failed: %v", err)
		}
		if p.Hand[White][Queen] != 1 || p.Hand[White][Knight] != 1 || p.Hand[Black][Knight] != 2 {
			t.Errorf("Unexpected hands: %v", p.Hand)
		}
		if got := p.String(); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[NQnn]" {
			t.Errorf("String() = %s", got)
		}
	})

	t.Run("PromotedMarker", func(t *testing.T) {
		p, err := ParsePlacement("Q~7/8/8/8/8/8/8/k6K[] w - - 0 1")
		if err != nil {
			t.Fatalf("ParsePlacement failed: %v", err)
		}
		if p.PieceAt(A8) != WhiteQueen {
			t.Errorf("Expected queen on a8, got %s", p.PieceAt(A8))
		}
	})

	t.Run("Errors", func(t *testing.T) {
		bad := []string{
			"",
			"8/8/8/8/8/8/8 w - - 0 1",
			"9/8/8/8/8/8/8/8 w - - 0 1",
			"rnbqkbnx/8/8/8/8/8/8/8 w - - 0 1",
			"8/8/8/8/8/8/8/8[Qx] w - - 0 1",
			"8/8/8/8/8/8/8/8[Q w - - 0 1",
			"ppppppppp/8/8/8/8/8/8/8 w - - 0 1",
		}
		for _, fen := range bad {
			if _, err := ParsePlacement(fen); err == nil {
				t.Errorf("Expected error for %q", fen)
			}
		}
	})
}

func TestPlacementFromGame(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/4k3/8/2K5/8/5P2/8 w - - 0 1",
	}
	for _, fen := range fens {
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("chess.FEN(%q): %v", fen, err)
		}
		got := PlacementFromGame(chess.NewGame(opt))

		want, err := ParsePlacement(fen)
		if err != nil {
			t.Fatalf("ParsePlacement(%q): %v", fen, err)
		}
		if got.Board != want.Board {
			t.Errorf("%s: placement from game %s, parsed %s", fen, got, want)
		}
	}
}

func TestPlacementFromPGN(t *testing.T) {
	pgn := "[Event \"?\"]\n\n1. e4 e5 2. Nf3 Nc6 *"
	got, err := PlacementFromPGN(strings.NewReader(pgn))
	if err != nil {
		t.Fatalf("PlacementFromPGN failed: %v", err)
	}
	want := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R"
	if got.String() != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	if _, err := PlacementFromPGN(strings.NewReader("1. e5 *")); err == nil {
		t.Error("Expected error for an illegal move")
	}
}
