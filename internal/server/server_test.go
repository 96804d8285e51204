package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestVariants(t *testing.T) {
	h := New(psqt.New(variant.NewSet(variant.Crazyhouse, variant.Race))).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/variants", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var got []VariantInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []VariantInfo{
		{Name: "chess", Mirror: "rank"},
		{Name: "crazyhouse", Mirror: "rank", Drops: true},
		{Name: "racingkings", Mirror: "file"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variant %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestPieceTable(t *testing.T) {
	h := New(nil).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/psqt/chess/white-knight", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var got PieceTable
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Squares) != 64 || got.Squares[0].Square != "a1" {
		t.Fatalf("Unexpected squares: %v", got.Squares)
	}
	if got.Squares[0].Mg != 781-175 || got.Squares[0].Eg != 854-96 {
		t.Errorf("Unexpected a1 entry %+v", got.Squares[0])
	}
	if got.Hand != nil {
		t.Errorf("Expected no hand entry, got %+v", got.Hand)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/psqt/zh/Q", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	got = PieceTable{}
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Hand == nil || got.Hand.Mg != 1037+25 || got.Hand.Eg != 1188+9 {
		t.Errorf("Expected crazyhouse queen hand entry, got %+v", got.Hand)
	}
}

func TestSquare(t *testing.T) {
	h := New(psqt.New(variant.NewSet(variant.Crazyhouse))).Handler()

	tests := []struct {
		name   string
		path   string
		status int
		mg, eg int
	}{
		{"black knight a8", "/api/v1/psqt/chess/n/a8", http.StatusOK, -(781 - 175), -(854 - 96)},
		{"uppercase square", "/api/v1/psqt/chess/n/A8", http.StatusOK, -(781 - 175), -(854 - 96)},
		{"hand", "/api/v1/psqt/crazyhouse/white-pawn/hand", http.StatusOK, 149 + 52, 206 + 13},
		{"no hand in chess", "/api/v1/psqt/chess/P/hand", http.StatusNotFound, 0, 0},
		{"bad square", "/api/v1/psqt/chess/P/z9", http.StatusBadRequest, 0, 0},
		{"bad piece", "/api/v1/psqt/chess/x/a1", http.StatusBadRequest, 0, 0},
		{"unknown variant", "/api/v1/psqt/shogi/P/a1", http.StatusBadRequest, 0, 0},
		{"disabled variant", "/api/v1/psqt/atomic/P/a1", http.StatusNotFound, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, nil)
			if rec.Code != tt.status {
				t.Fatalf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body)
			}
			if tt.status != http.StatusOK {
				return
			}
			var got SquareScore
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Mg != tt.mg || got.Eg != tt.eg {
				t.Errorf("Expected (%d, %d), got %+v", tt.mg, tt.eg, got)
			}
		})
	}
}

func TestEval(t *testing.T) {
	h := New(nil).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/eval", EvalArgs{FEN: "4k3/8/8/8/8/8/8/N3K3 w - - 0 1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var got EvalResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := EvalResult{Variant: "chess", Mg: 606, Eg: 758, Phase: 0, Value: 758}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	rec = do(t, h, http.MethodPost, "/api/v1/eval", EvalArgs{Variant: "chess", FEN: "not a fen"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a bad FEN, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/api/v1/eval", EvalArgs{FEN: "ignored", PGN: "1. e4 e5 2. Nf3 Nc6 *"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for a PGN game, got %d: %s", rec.Code, rec.Body)
	}
	got = EvalResult{}
	json.Unmarshal(rec.Body.Bytes(), &got)
	want = EvalResult{Variant: "chess", Phase: 128}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	rec = do(t, h, http.MethodPost, "/api/v1/eval", EvalArgs{PGN: "1. e5 *"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an illegal PGN move, got %d", rec.Code)
	}
}

func TestEvalArgsVariantDefault(t *testing.T) {
	h := New(nil).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/eval", map[string]string{"variant": "", "fen": board.StartFEN})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var got EvalResult
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Variant != "chess" {
		t.Errorf("Expected empty variant to mean chess, got %q", got.Variant)
	}
}
