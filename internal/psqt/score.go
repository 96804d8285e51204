package psqt

import "fmt"

// Score packs a middlegame and an endgame value into one integer so that
// plain addition and negation act on both halves at once.
type Score int64

// S builds a Score from its two halves.
func S(mg, eg int) Score {
	return Score(mg)<<32 + Score(eg)
}

// Mg returns the middlegame half.
func (s Score) Mg() int {
	return int(int32((s + 1<<31) >> 32))
}

// Eg returns the endgame half.
func (s Score) Eg() int {
	return int(int32(s))
}

func (s Score) String() string {
	return fmt.Sprintf("S(%d, %d)", s.Mg(), s.Eg())
}
