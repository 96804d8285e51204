// Package engine scores piece placements with the piece-square tables.
package engine

import (
	"fmt"
	"io"

	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
)

// PhaseMidgame is the phase value of a position with full non-pawn material.
const PhaseMidgame = 128

// Result is a static evaluation from White's perspective.
type Result struct {
	Score psqt.Score // Summed (middlegame, endgame) pair
	Phase int        // 0 (bare endgame) .. PhaseMidgame
	Value int        // Score tapered by Phase
}

// Evaluator reads one set of tables. It holds no mutable state and is safe
// for concurrent use.
type Evaluator struct {
	tables *psqt.Tables
}

// NewEvaluator returns an evaluator over tables, or over the process-wide
// tables when tables is nil.
func NewEvaluator(tables *psqt.Tables) *Evaluator {
	if tables == nil {
		tables = psqt.Default()
	}
	return &Evaluator{tables: tables}
}

// Tables returns the tables the evaluator reads.
func (e *Evaluator) Tables() *psqt.Tables {
	return e.tables
}

// Evaluate sums the table entries of every piece on the board and, for drop
// variants, every piece in hand, then tapers the total by game phase.
func (e *Evaluator) Evaluate(v variant.Variant, p *board.Placement) (Result, error) {
	vt, err := e.tables.Lookup(v)
	if err != nil {
		return Result{}, err
	}

	var score psqt.Score
	for sq := board.A1; sq <= board.H8; sq++ {
		if pc := p.PieceAt(sq); pc != board.NoPiece {
			score += vt.At(pc, sq)
		}
	}

	if p.HasHand() {
		if !vt.HasHandSlot() {
			return Result{}, fmt.Errorf("%s does not allow pieces in hand", v)
		}
		for c := board.White; c <= board.Black; c++ {
			for _, pt := range board.PieceTypes {
				n := p.Hand[c][pt]
				if n == 0 {
					continue
				}
				s, _ := vt.InHand(board.NewPiece(pt, c))
				score += psqt.Score(n) * s
			}
		}
	}

	phase := Phase(v, p)
	return Result{
		Score: score,
		Phase: phase,
		Value: Taper(score, phase),
	}, nil
}

// EvaluateFEN parses the board field of fen and evaluates it.
func (e *Evaluator) EvaluateFEN(v variant.Variant, fen string) (Result, error) {
	p, err := board.ParsePlacement(fen)
	if err != nil {
		return Result{}, fmt.Errorf("parse placement: %w", err)
	}
	return e.Evaluate(v, p)
}

// EvaluatePGN plays through a PGN game and evaluates the final position.
func (e *Evaluator) EvaluatePGN(v variant.Variant, r io.Reader) (Result, error) {
	p, err := board.PlacementFromPGN(r)
	if err != nil {
		return Result{}, err
	}
	return e.Evaluate(v, p)
}

// Phase maps the non-pawn material of both sides, held pieces included, onto
// 0..PhaseMidgame.
func Phase(v variant.Variant, p *board.Placement) int {
	npm := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		pc := p.PieceAt(sq)
		if pc == board.NoPiece {
			continue
		}
		npm += nonPawnValue(v, pc.Type())
	}
	for c := range p.Hand {
		for pt, n := range p.Hand[c] {
			npm += n * nonPawnValue(v, board.PieceType(pt))
		}
	}

	if npm > variant.MidgameLimit {
		npm = variant.MidgameLimit
	}
	if npm < variant.EndgameLimit {
		npm = variant.EndgameLimit
	}
	return (npm - variant.EndgameLimit) * PhaseMidgame / (variant.MidgameLimit - variant.EndgameLimit)
}

func nonPawnValue(v variant.Variant, pt board.PieceType) int {
	if pt == board.Pawn || pt == board.King {
		return 0
	}
	x := variant.PieceValue(v, variant.MG, pt)
	if x < 0 {
		return -x
	}
	return x
}

// Taper interpolates between the middlegame and endgame halves of s.
func Taper(s psqt.Score, phase int) int {
	if phase > PhaseMidgame {
		phase = PhaseMidgame
	}
	if phase < 0 {
		phase = 0
	}
	return (s.Mg()*phase + s.Eg()*(PhaseMidgame-phase)) / PhaseMidgame
}
