package storage

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTest(t)
	tables := psqt.Default()

	if err := s.Save(tables); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Run("Chess", func(t *testing.T) {
		snap, err := s.Load(variant.Chess)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		knight := snap.Squares[board.WhiteKnight.Name()]
		if len(knight) != board.SquareNB {
			t.Fatalf("Expected %d entries, got %d", board.SquareNB, len(knight))
		}
		want := tables.At(variant.Chess, board.WhiteKnight, board.A1)
		if knight[board.A1].Score() != want {
			t.Errorf("Expected knight a1 %v, got %+v", want, knight[board.A1])
		}
		if snap.Hand != nil {
			t.Errorf("Expected no hand entries for chess, got %v", snap.Hand)
		}
		if snap.SavedAt.IsZero() {
			t.Error("Expected SavedAt to be set")
		}
	})

	t.Run("Crazyhouse", func(t *testing.T) {
		snap, err := s.Load(variant.Crazyhouse)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		want, _ := tables.InHand(variant.Crazyhouse, board.BlackQueen)
		if got := snap.Hand[board.BlackQueen.Name()].Score(); got != want {
			t.Errorf("Expected black queen in hand %v, got %v", want, got)
		}
	})

	t.Run("List", func(t *testing.T) {
		vs, err := s.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(vs) != variant.VariantNB || vs[0] != variant.Chess {
			t.Errorf("Unexpected list %v", vs)
		}
	})

	t.Run("Verify", func(t *testing.T) {
		drift, err := s.Verify(tables)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if len(drift) != 0 {
			t.Errorf("Expected no drift, got %v", drift)
		}
	})
}

func TestSnapshotJSONKeys(t *testing.T) {
	vt, _ := psqt.Default().Variant(variant.Crazyhouse)
	data, err := json.Marshal(NewSnapshot(vt))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, k := range []string{"variant", "fingerprint", "squares", "hand", "saved_at"} {
		if _, ok := raw[k]; !ok {
			t.Errorf("Expected key %q in %s", k, data[:80])
		}
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTest(t)

	if _, err := s.Load(variant.Horde); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	drift, err := s.Verify(psqt.New(variant.NewSet(variant.Horde)))
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if len(drift) != 2 || !drift[0].Missing || drift[1].Variant != variant.Horde {
		t.Errorf("Expected chess and horde missing, got %v", drift)
	}
}

func TestVerifyDetectsDrift(t *testing.T) {
	s := openTest(t)
	tables := psqt.New(variant.NewSet(variant.Atomic))

	if err := s.Save(tables); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Rewrite the atomic snapshot as an older build would have left it.
	snap, err := s.Load(variant.Atomic)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	snap.Fingerprint ^= 1
	data, _ := json.Marshal(snap)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(variant.Atomic), data)
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	drift, err := s.Verify(tables)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if len(drift) != 1 || drift[0].Variant != variant.Atomic || drift[0].Missing {
		t.Fatalf("Expected atomic drift, got %v", drift)
	}
	t.Logf("drift: %s", drift[0])
}

func TestDataPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PSQT_DATA_DIR", dir)

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir != dir {
		t.Errorf("Expected %s, got %s", dir, dataDir)
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}

	s, err := NewStorage()
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
