// Package server exposes the piece-square tables over a read-only HTTP API.
package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/engine"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
)

type VariantInfo struct {
	Name   string `json:"name"`
	Mirror string `json:"mirror"`
	Drops  bool   `json:"drops"`
}

type SquareScore struct {
	Square string `json:"square"`
	Mg     int    `json:"mg"`
	Eg     int    `json:"eg"`
}

type PieceTable struct {
	Variant string        `json:"variant"`
	Piece   string        `json:"piece"`
	Squares []SquareScore `json:"squares"`
	Hand    *SquareScore  `json:"hand,omitempty"`
}

// EvalArgs selects the position to score. PGN, when set, takes precedence
// over FEN and the final position of the game is used.
type EvalArgs struct {
	Variant string `json:"variant"`
	FEN     string `json:"fen"`
	PGN     string `json:"pgn"`
}

type EvalResult struct {
	Variant string `json:"variant"`
	Mg      int    `json:"mg"`
	Eg      int    `json:"eg"`
	Phase   int    `json:"phase"`
	Value   int    `json:"value"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Server answers table queries against one set of tables.
type Server struct {
	eval   *engine.Evaluator
	router *gin.Engine
}

// New builds the router. A nil tables uses the process-wide tables.
func New(tables *psqt.Tables) *Server {
	s := &Server{eval: engine.NewEvaluator(tables)}

	r := gin.New()
	r.Use(gin.Recovery())
	v1 := r.Group("/api/v1")
	{
		v1.GET("/variants", s.getVariants)
		v1.GET("/psqt/:variant/:piece", s.getPiece)
		v1.GET("/psqt/:variant/:piece/:square", s.getSquare)
		v1.POST("/eval", s.postEval)
	}
	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until the server fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) getVariants(c *gin.Context) {
	var out []VariantInfo
	for _, v := range s.eval.Tables().Set().Variants() {
		out = append(out, VariantInfo{
			Name:   v.String(),
			Mirror: v.Mirror().String(),
			Drops:  v.HasDrops(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getPiece(c *gin.Context) {
	vt, pc, ok := s.table(c)
	if !ok {
		return
	}

	out := PieceTable{
		Variant: vt.Variant.String(),
		Piece:   pc.Name(),
		Squares: make([]SquareScore, 0, board.SquareNB),
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		out.Squares = append(out.Squares, squareScore(sq.String(), vt.At(pc, sq)))
	}
	if h, ok := vt.InHand(pc); ok {
		hand := squareScore("hand", h)
		out.Hand = &hand
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getSquare(c *gin.Context) {
	vt, pc, ok := s.table(c)
	if !ok {
		return
	}

	name := strings.ToLower(c.Param("square"))
	if name == "hand" {
		h, ok := vt.InHand(pc)
		if !ok {
			c.JSON(http.StatusNotFound, errorBody{vt.Variant.String() + " has no pieces in hand"})
			return
		}
		c.JSON(http.StatusOK, squareScore(name, h))
		return
	}

	sq, err := board.ParseSquare(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{err.Error()})
		return
	}
	c.JSON(http.StatusOK, squareScore(sq.String(), vt.At(pc, sq)))
}

func (s *Server) postEval(c *gin.Context) {
	var args EvalArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{err.Error()})
		return
	}

	if args.Variant == "" {
		args.Variant = variant.Chess.String()
	}
	v, err := variant.Parse(args.Variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{err.Error()})
		return
	}

	var res engine.Result
	if args.PGN != "" {
		res, err = s.eval.EvaluatePGN(v, strings.NewReader(args.PGN))
	} else {
		res, err = s.eval.EvaluateFEN(v, args.FEN)
	}
	if err != nil {
		c.JSON(statusOf(err), errorBody{err.Error()})
		return
	}

	c.JSON(http.StatusOK, EvalResult{
		Variant: v.String(),
		Mg:      res.Score.Mg(),
		Eg:      res.Score.Eg(),
		Phase:   res.Phase,
		Value:   res.Value,
	})
}

// table resolves the :variant and :piece parameters, writing the error
// response itself when they are invalid.
func (s *Server) table(c *gin.Context) (*psqt.VariantTable, board.Piece, bool) {
	v, err := variant.Parse(c.Param("variant"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{err.Error()})
		return nil, board.NoPiece, false
	}
	vt, err := s.eval.Tables().Lookup(v)
	if err != nil {
		c.JSON(statusOf(err), errorBody{err.Error()})
		return nil, board.NoPiece, false
	}
	pc, ok := board.ParsePiece(c.Param("piece"))
	if !ok {
		c.JSON(http.StatusBadRequest, errorBody{"unknown piece: " + c.Param("piece")})
		return nil, board.NoPiece, false
	}
	return vt, pc, true
}

func statusOf(err error) int {
	if errors.Is(err, psqt.ErrNotEnabled) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func squareScore(name string, s psqt.Score) SquareScore {
	return SquareScore{Square: name, Mg: s.Mg(), Eg: s.Eg()}
}
