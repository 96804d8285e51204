// Package variant describes the rule-sets the evaluation tables are built for.
package variant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/psqt/internal/board"
)

// Variant identifies a rule-set. The base variant comes first.
type Variant uint8

const (
	Chess Variant = iota
	Anti
	Atomic
	Crazyhouse
	Extinction
	Grid
	Horde
	KingOfTheHill
	Losers
	Race
	ThreeCheck
	TwoKings
	NoVariant
)

// VariantNB is the number of known variants.
const VariantNB = int(NoVariant)

// ErrUnknownVariant is returned when a name matches no variant.
var ErrUnknownVariant = errors.New("unknown variant")

// MirrorAxis says how a white entry is reflected to produce the black one.
type MirrorAxis uint8

const (
	// MirrorRank reflects across the horizontal center line (a1 <-> a8).
	MirrorRank MirrorAxis = iota
	// MirrorFile reflects across the vertical center line (a1 <-> h1).
	MirrorFile
)

func (m MirrorAxis) String() string {
	if m == MirrorFile {
		return "file"
	}
	return "rank"
}

// Rules is the static description of a variant.
type Rules struct {
	Name   string
	Mirror MirrorAxis
	// Drops is set when captured pieces can be held and dropped back.
	Drops bool
}

var rules = [VariantNB]Rules{
	Chess:         {Name: "chess", Mirror: MirrorRank},
	Anti:          {Name: "antichess", Mirror: MirrorRank},
	Atomic:        {Name: "atomic", Mirror: MirrorRank},
	Crazyhouse:    {Name: "crazyhouse", Mirror: MirrorRank, Drops: true},
	Extinction:    {Name: "extinction", Mirror: MirrorRank},
	Grid:          {Name: "grid", Mirror: MirrorRank},
	Horde:         {Name: "horde", Mirror: MirrorRank},
	KingOfTheHill: {Name: "kingofthehill", Mirror: MirrorRank},
	Losers:        {Name: "losers", Mirror: MirrorRank},
	// Both armies start on ranks 1-2, black on the right-hand side.
	Race:       {Name: "racingkings", Mirror: MirrorFile},
	ThreeCheck: {Name: "threecheck", Mirror: MirrorRank},
	TwoKings:   {Name: "twokings", Mirror: MirrorRank},
}

var aliases = map[string]Variant{
	"standard":     Chess,
	"normal":       Chess,
	"anti":         Anti,
	"giveaway":     Anti,
	"suicide":      Anti,
	"zh":           Crazyhouse,
	"house":        Crazyhouse,
	"koth":         KingOfTheHill,
	"race":         Race,
	"racing-kings": Race,
	"3check":       ThreeCheck,
	"three-check":  ThreeCheck,
	"2kings":       TwoKings,
	"two-kings":    TwoKings,
}

// Rules returns the rule description of v.
func (v Variant) Rules() Rules {
	if v >= NoVariant {
		return Rules{Name: "none"}
	}
	return rules[v]
}

// String returns the canonical lowercase name.
func (v Variant) String() string {
	return v.Rules().Name
}

// Mirror returns the reflection axis used for the black half of the tables.
func (v Variant) Mirror() MirrorAxis {
	return v.Rules().Mirror
}

// HasDrops reports whether pieces can be held off the board.
func (v Variant) HasDrops() bool {
	return v.Rules().Drops
}

// IsValid reports whether v names a known variant.
func (v Variant) IsValid() bool {
	return v < NoVariant
}

// Parse looks a variant up by canonical name or common alias.
func Parse(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for v := Chess; v < NoVariant; v++ {
		if rules[v].Name == key {
			return v, nil
		}
	}
	if v, ok := aliases[key]; ok {
		return v, nil
	}
	return NoVariant, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// MirrorSquare returns the square a black piece occupies when it mirrors a
// white piece on sq.
func (v Variant) MirrorSquare(sq board.Square) board.Square {
	if v.Mirror() == MirrorFile {
		return sq.FlipFile()
	}
	return sq.FlipRank()
}
