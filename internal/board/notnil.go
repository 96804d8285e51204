package board

import (
	"fmt"
	"io"

	"github.com/notnil/chess"
)

// notnil/chess numbers its types King..Pawn starting at 1.
var fromChessType = map[chess.PieceType]PieceType{
	chess.Pawn:   Pawn,
	chess.Knight: Knight,
	chess.Bishop: Bishop,
	chess.Rook:   Rook,
	chess.Queen:  Queen,
	chess.King:   King,
}

// FromChessPiece converts a notnil/chess piece.
func FromChessPiece(p chess.Piece) Piece {
	pt, ok := fromChessType[p.Type()]
	if !ok {
		return NoPiece
	}
	switch p.Color() {
	case chess.White:
		return NewPiece(pt, White)
	case chess.Black:
		return NewPiece(pt, Black)
	}
	return NoPiece
}

// PlacementFromGame copies the current piece layout of a notnil/chess game.
// Both libraries number squares a1=0 .. h8=63.
func PlacementFromGame(g *chess.Game) *Placement {
	p := NewPlacement()
	for sq, pc := range g.Position().Board().SquareMap() {
		if piece := FromChessPiece(pc); piece != NoPiece {
			p.Put(piece, Square(sq))
		}
	}
	return p
}

// PlacementFromPGN plays through the game in r and returns its final layout.
func PlacementFromPGN(r io.Reader) (*Placement, error) {
	opt, err := chess.PGN(r)
	if err != nil {
		return nil, fmt.Errorf("parse pgn: %w", err)
	}
	return PlacementFromGame(chess.NewGame(opt)), nil
}
