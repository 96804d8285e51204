package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/variant"
)

// Storage keys
const keyPrefix = "psqt/"

// ErrNotFound is returned when no snapshot exists for a variant.
var ErrNotFound = errors.New("snapshot not found")

// Entry is one (middlegame, endgame) pair.
type Entry struct {
	Mg int `json:"mg"`
	Eg int `json:"eg"`
}

func entryOf(s psqt.Score) Entry {
	return Entry{Mg: s.Mg(), Eg: s.Eg()}
}

// Score converts the entry back to a packed score.
func (e Entry) Score() psqt.Score {
	return psqt.S(e.Mg, e.Eg)
}

// VariantSnapshot is the stored form of one variant table.
type VariantSnapshot struct {
	Variant     string             `json:"variant"`
	Fingerprint uint64             `json:"fingerprint"`
	Squares     map[string][]Entry `json:"squares"`
	Hand        map[string]Entry   `json:"hand,omitempty"`
	SavedAt     time.Time          `json:"saved_at"`
}

// NewSnapshot captures vt. Pieces are keyed by their long names.
func NewSnapshot(vt *psqt.VariantTable) *VariantSnapshot {
	snap := &VariantSnapshot{
		Variant:     vt.Variant.String(),
		Fingerprint: vt.Fingerprint(),
		Squares:     make(map[string][]Entry, board.PieceNB),
	}
	for pc := board.WhitePawn; pc < board.NoPiece; pc++ {
		row := vt.Row(pc)
		entries := make([]Entry, len(row))
		for sq, s := range row {
			entries[sq] = entryOf(s)
		}
		snap.Squares[pc.Name()] = entries

		if s, ok := vt.InHand(pc); ok {
			if snap.Hand == nil {
				snap.Hand = make(map[string]Entry, board.PieceNB)
			}
			snap.Hand[pc.Name()] = entryOf(s)
		}
	}
	return snap
}

// Drift describes a variant whose table no longer matches its snapshot.
type Drift struct {
	Variant variant.Variant
	Stored  uint64
	Current uint64
	Missing bool // no snapshot was stored
}

func (d Drift) String() string {
	if d.Missing {
		return fmt.Sprintf("%s: no snapshot", d.Variant)
	}
	return fmt.Sprintf("%s: fingerprint %016x, stored %016x", d.Variant, d.Current, d.Stored)
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(v variant.Variant) []byte {
	return []byte(keyPrefix + v.String())
}

// Save stores a snapshot of every variant in t, replacing older ones.
func (s *Storage) Save(t *psqt.Tables) error {
	now := time.Now()

	return s.db.Update(func(txn *badger.Txn) error {
		for _, v := range t.Set().Variants() {
			vt, _ := t.Variant(v)
			snap := NewSnapshot(vt)
			snap.SavedAt = now

			data, err := json.Marshal(snap)
			if err != nil {
				return err
			}
			if err := txn.Set(key(v), data); err != nil {
				return fmt.Errorf("store %s: %w", v, err)
			}
		}
		return nil
	})
}

// Load returns the stored snapshot of v.
func (s *Storage) Load(v variant.Variant) (*VariantSnapshot, error) {
	var snap VariantSnapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(v))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, v)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// List returns the variants that have a snapshot, in catalogue order.
func (s *Storage) List() ([]variant.Variant, error) {
	found := make(map[variant.Variant]bool)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			name := strings.TrimPrefix(string(it.Item().Key()), keyPrefix)
			v, err := variant.Parse(name)
			if err != nil {
				continue // written by a build that knew more variants
			}
			found[v] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out []variant.Variant
	for v := variant.Chess; v < variant.NoVariant; v++ {
		if found[v] {
			out = append(out, v)
		}
	}
	return out, nil
}

// Verify compares every table in t with its stored snapshot and reports the
// variants that differ or were never saved.
func (s *Storage) Verify(t *psqt.Tables) ([]Drift, error) {
	var drift []Drift

	for _, v := range t.Set().Variants() {
		vt, _ := t.Variant(v)
		current := vt.Fingerprint()

		snap, err := s.Load(v)
		if errors.Is(err, ErrNotFound) {
			drift = append(drift, Drift{Variant: v, Current: current, Missing: true})
			continue
		}
		if err != nil {
			return nil, err
		}
		if snap.Fingerprint != current {
			drift = append(drift, Drift{Variant: v, Stored: snap.Fingerprint, Current: current})
		}
	}

	return drift, nil
}
