package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
)

func TestStartPositionIsBalanced(t *testing.T) {
	eng := NewEvaluator(nil)

	tests := []struct {
		v   variant.Variant
		fen string
	}{
		{variant.Chess, board.StartFEN},
		{variant.Crazyhouse, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[] w KQkq - 0 1"},
		{variant.Atomic, board.StartFEN},
		{variant.Race, "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ w - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			res, err := eng.EvaluateFEN(tt.v, tt.fen)
			if err != nil {
				t.Fatalf("EvaluateFEN failed: %v", err)
			}
			if res.Score != 0 {
				t.Errorf("Expected balanced score, got %v", res.Score)
			}
		})
	}
}

func TestExtraKnight(t *testing.T) {
	eng := NewEvaluator(nil)

	res, err := eng.EvaluateFEN(variant.Chess, "4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("EvaluateFEN failed: %v", err)
	}
	want := psqt.S(781-175, 854-96)
	if res.Score != want {
		t.Errorf("Expected %v, got %v", want, res.Score)
	}
	if res.Phase != 0 {
		t.Errorf("Expected endgame phase 0, got %d", res.Phase)
	}
	if res.Value != want.Eg() {
		t.Errorf("Expected tapered value %d, got %d", want.Eg(), res.Value)
	}
}

func TestPiecesInHand(t *testing.T) {
	eng := NewEvaluator(nil)

	res, err := eng.EvaluateFEN(variant.Crazyhouse, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[NN] w KQkq - 0 1")
	if err != nil {
		t.Fatalf("EvaluateFEN failed: %v", err)
	}
	want := 2 * psqt.S(474+66, 561+30)
	if res.Score != want {
		t.Errorf("Expected %v, got %v", want, res.Score)
	}

	if _, err := eng.EvaluateFEN(variant.Chess, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[N] w KQkq - 0 1"); err == nil {
		t.Error("Expected error for pieces in hand in standard chess")
	}
}

func TestEvaluatePGN(t *testing.T) {
	eng := NewEvaluator(nil)

	// Mirrored opening moves leave the tables balanced.
	res, err := eng.EvaluatePGN(variant.Chess, strings.NewReader("1. e4 e5 2. Nf3 Nc6 *"))
	if err != nil {
		t.Fatalf("EvaluatePGN failed: %v", err)
	}
	if res.Score != 0 || res.Phase != PhaseMidgame {
		t.Errorf("Expected balanced midgame, got %+v", res)
	}

	// White trades the e-pawn for a knight.
	res, err = eng.EvaluatePGN(variant.Chess, strings.NewReader("1. e4 Nf6 2. Nc3 Nxe4 3. Nxe4 *"))
	if err != nil {
		t.Fatalf("EvaluatePGN failed: %v", err)
	}
	if res.Score.Mg() <= 0 {
		t.Errorf("Expected white ahead after winning a knight, got %v", res.Score)
	}

	if _, err := eng.EvaluatePGN(variant.Chess, strings.NewReader("1. Ke2 Ke7 2. Kd4 *")); err == nil {
		t.Error("Expected error for an illegal move")
	}
}

func TestDisabledVariant(t *testing.T) {
	eng := NewEvaluator(psqt.New(variant.NewSet(variant.Horde)))

	if _, err := eng.EvaluateFEN(variant.Atomic, board.StartFEN); !errors.Is(err, psqt.ErrNotEnabled) {
		t.Errorf("Expected ErrNotEnabled, got %v", err)
	}
	if _, err := eng.EvaluateFEN(variant.Horde, board.StartFEN); err != nil {
		t.Errorf("Expected horde to evaluate, got %v", err)
	}
}

func TestPhase(t *testing.T) {
	start, _ := board.ParsePlacement(board.StartFEN)
	if got := Phase(variant.Chess, start); got != PhaseMidgame {
		t.Errorf("Expected start phase %d, got %d", PhaseMidgame, got)
	}

	kings, _ := board.ParsePlacement("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := Phase(variant.Chess, kings); got != 0 {
		t.Errorf("Expected bare kings phase 0, got %d", got)
	}

	// Antichess values are negative; phase still counts their size.
	if got := Phase(variant.Anti, start); got <= 0 {
		t.Errorf("Expected positive antichess phase, got %d", got)
	}
}

func TestTaper(t *testing.T) {
	s := psqt.S(100, -100)
	tests := []struct {
		phase, want int
	}{
		{PhaseMidgame, 100},
		{0, -100},
		{PhaseMidgame / 2, 0},
		{PhaseMidgame + 10, 100},
		{-5, -100},
	}
	for _, tt := range tests {
		if got := Taper(s, tt.phase); got != tt.want {
			t.Errorf("Taper(%v, %d) = %d, want %d", s, tt.phase, got, tt.want)
		}
	}
}
