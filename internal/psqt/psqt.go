// Package psqt builds the piece-square tables used by evaluation. The hand
// tuned data in bonus.go only covers files a..d and the white side; init
// expands it into dense per-variant tables with the piece values folded in
// and the black half stored negated on the mirrored square.
package psqt

import (
	"errors"
	"fmt"

	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/variant"
)

// ErrNotEnabled is returned when a variant is known but no table was built
// for it.
var ErrNotEnabled = errors.New("variant not enabled")

// VariantTable is the dense lookup of one variant. Each piece row has an
// entry per square, plus one at board.NoSquare for variants with drops.
type VariantTable struct {
	Variant variant.Variant
	psq     [board.PieceNB][]Score
}

func newVariantTable(v variant.Variant) *VariantTable {
	n := board.SquareNB
	if v.HasDrops() {
		n++
	}
	vt := &VariantTable{Variant: v}
	for pc := range vt.psq {
		vt.psq[pc] = make([]Score, n)
	}
	return vt
}

// At returns the score of pc standing on sq.
func (vt *VariantTable) At(pc board.Piece, sq board.Square) Score {
	return vt.psq[pc][sq]
}

// HasHandSlot reports whether the table carries the off-board entry.
func (vt *VariantTable) HasHandSlot() bool {
	return len(vt.psq[board.WhitePawn]) > board.SquareNB
}

// InHand returns the score of pc held off the board. ok is false for
// variants without drops.
func (vt *VariantTable) InHand(pc board.Piece) (s Score, ok bool) {
	if !vt.HasHandSlot() {
		return 0, false
	}
	return vt.psq[pc][board.NoSquare], true
}

// Row returns a copy of the 64 on-board entries of pc.
func (vt *VariantTable) Row(pc board.Piece) [board.SquareNB]Score {
	var row [board.SquareNB]Score
	copy(row[:], vt.psq[pc])
	return row
}

// init overwrites every entry, so calling it again yields the same table.
func (vt *VariantTable) init() {
	v := vt.Variant

	for _, pt := range board.PieceTypes {
		pc := board.NewPiece(pt, board.White)
		score := Material(v, pt)

		for sq := board.A1; sq <= board.H8; sq++ {
			s := score + Bonus(v, pt, sq)
			vt.psq[pc][sq] = s
			vt.psq[pc.Flip()][v.MirrorSquare(sq)] = -s
		}

		if vt.HasHandSlot() {
			s := score + inHandBonus[pt]
			vt.psq[pc][board.NoSquare] = s
			vt.psq[pc.Flip()][board.NoSquare] = -s
		}
	}
}

// Material returns the piece value of pt in v as a Score.
func Material(v variant.Variant, pt board.PieceType) Score {
	return S(variant.PieceValue(v, variant.MG, pt), variant.PieceValue(v, variant.EG, pt))
}

// Bonus returns the positional part of the white entry for pt on sq. The
// base variant's pawns read the full-width table; everything else reads the
// half-board table through the file's edge distance.
func Bonus(v variant.Variant, pt board.PieceType, sq board.Square) Score {
	if v == variant.Chess && pt == board.Pawn {
		return pawnBonus[sq.Rank()][sq.File()]
	}
	set, ok := bonus[v]
	if !ok || pt >= board.NoPieceType {
		return 0
	}
	return set[pt][sq.Rank()][board.EdgeDistance(sq.File())]
}

// Tables holds one VariantTable per enabled variant.
type Tables struct {
	set    variant.Set
	tables [variant.VariantNB]*VariantTable
}

// New allocates and initialises tables for every variant in set.
func New(set variant.Set) *Tables {
	t := &Tables{set: set}
	for _, v := range set.Variants() {
		t.tables[v] = newVariantTable(v)
	}
	t.Init()
	return t
}

// Init (re)computes every entry of every enabled variant.
func (t *Tables) Init() {
	for _, vt := range t.tables {
		if vt != nil {
			vt.init()
		}
	}
}

// Set returns the enabled variants.
func (t *Tables) Set() variant.Set {
	return t.set
}

// Variant returns the table of v, if it was built.
func (t *Tables) Variant(v variant.Variant) (*VariantTable, bool) {
	if !v.IsValid() || t.tables[v] == nil {
		return nil, false
	}
	return t.tables[v], true
}

// Lookup is Variant with an error for callers that report it.
func (t *Tables) Lookup(v variant.Variant) (*VariantTable, error) {
	vt, ok := t.Variant(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotEnabled, v)
	}
	return vt, nil
}

// At returns the entry for pc on sq in v, or zero when v is not enabled.
func (t *Tables) At(v variant.Variant, pc board.Piece, sq board.Square) Score {
	vt, ok := t.Variant(v)
	if !ok {
		return 0
	}
	return vt.At(pc, sq)
}

// InHand returns the off-board entry for pc in v.
func (t *Tables) InHand(v variant.Variant, pc board.Piece) (Score, bool) {
	vt, ok := t.Variant(v)
	if !ok {
		return 0, false
	}
	return vt.InHand(pc)
}

var defaultTables *Tables

func init() {
	defaultTables = New(variant.All())
}

// Default returns the process-wide tables built at startup for all
// variants. Callers must treat them as read-only.
func Default() *Tables {
	return defaultTables
}
