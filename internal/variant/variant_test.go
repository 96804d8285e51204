package variant

import (
	"errors"
	"testing"

	"github.com/hailam/psqt/internal/board"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"chess", Chess},
		{"Standard", Chess},
		{"crazyhouse", Crazyhouse},
		{"zh", Crazyhouse},
		{"koth", KingOfTheHill},
		{" racingkings ", Race},
		{"3check", ThreeCheck},
		{"twokings", TwoKings},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Parse(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}

	if _, err := Parse("shogi"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
}

func TestNamesRoundTrip(t *testing.T) {
	for v := Chess; v < NoVariant; v++ {
		got, err := Parse(v.String())
		if err != nil || got != v {
			t.Errorf("Parse(%q) = %s, %v", v.String(), got, err)
		}
	}
}

func TestRules(t *testing.T) {
	for v := Chess; v < NoVariant; v++ {
		wantMirror := MirrorRank
		if v == Race {
			wantMirror = MirrorFile
		}
		if v.Mirror() != wantMirror {
			t.Errorf("%s: mirror %s, want %s", v, v.Mirror(), wantMirror)
		}
		if v.HasDrops() != (v == Crazyhouse) {
			t.Errorf("%s: drops %v", v, v.HasDrops())
		}
	}

	if got := Race.MirrorSquare(board.B2); got != board.G2 {
		t.Errorf("Race.MirrorSquare(b2) = %s, want g2", got)
	}
	if got := Chess.MirrorSquare(board.B2); got != board.B7 {
		t.Errorf("Chess.MirrorSquare(b2) = %s, want b7", got)
	}
}

func TestPieceValue(t *testing.T) {
	if got := PieceValue(Chess, MG, board.Knight); got != 781 {
		t.Errorf("Expected knight MG 781, got %d", got)
	}
	if got := PieceValue(Chess, EG, board.Queen); got != 2682 {
		t.Errorf("Expected queen EG 2682, got %d", got)
	}
	if got := PieceValue(Race, MG, board.Pawn); got != 0 {
		t.Errorf("Expected no pawn value in racing kings, got %d", got)
	}
	if got := PieceValue(NoVariant, MG, board.Queen); got != 0 {
		t.Errorf("Expected 0 for NoVariant, got %d", got)
	}
}

func TestSet(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		s := All()
		if s.Len() != VariantNB {
			t.Errorf("Expected %d variants, got %d", VariantNB, s.Len())
		}
		if vs := s.Variants(); vs[0] != Chess {
			t.Errorf("Expected base variant first, got %s", vs[0])
		}
	})

	t.Run("BaseAlwaysPresent", func(t *testing.T) {
		s := NewSet(Atomic)
		if !s.Has(Chess) || !s.Has(Atomic) || s.Has(Horde) {
			t.Errorf("Unexpected set %s", s)
		}
	})

	t.Run("Parse", func(t *testing.T) {
		s, err := ParseSet("crazyhouse, racingkings,")
		if err != nil {
			t.Fatalf("ParseSet failed: %v", err)
		}
		if got := s.String(); got != "chess,crazyhouse,racingkings" {
			t.Errorf("String() = %s", got)
		}
		if s, _ := ParseSet(""); s != All() {
			t.Errorf("Expected empty list to select all, got %s", s)
		}
		if _, err := ParseSet("chess,bughouse"); !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("Expected ErrUnknownVariant, got %v", err)
		}
	})
}
