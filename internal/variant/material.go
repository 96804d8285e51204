package variant

import "github.com/hailam/psqt/internal/board"

// Phase selects the middlegame or endgame half of a score.
type Phase uint8

const (
	MG Phase = iota
	EG
)

// PhaseNB is the number of game phases.
const PhaseNB = 2

// Game phase limits on non-pawn material, in the base variant's units.
const (
	MidgameLimit = 15258
	EndgameLimit = 3915
)

// pieceValue[variant][phase][pieceType]. Kings only carry material in
// variants where they can be captured.
var pieceValue = [VariantNB][PhaseNB][board.PieceTypeNB]int{
	Chess: {
		{128, 781, 825, 1276, 2538, 0},
		{213, 854, 915, 1380, 2682, 0},
	},
	Anti: {
		{-137, -130, -322, -496, -749, -52},
		{-360, 41, 64, 135, -67, -153},
	},
	Atomic: {
		{282, 494, 658, 1109, 1872, 0},
		{315, 654, 820, 1231, 2326, 0},
	},
	Crazyhouse: {
		{149, 474, 427, 615, 1037, 0},
		{206, 561, 532, 604, 1188, 0},
	},
	Extinction: {
		{209, 886, 830, 1171, 2391, 890},
		{238, 832, 877, 1299, 2630, 904},
	},
	Grid: {
		{140, 677, 812, 1149, 2395, 0},
		{197, 778, 855, 1292, 2515, 0},
	},
	Horde: {
		{321, 815, 840, 1241, 2543, 0},
		{262, 892, 912, 1350, 2682, 0},
	},
	KingOfTheHill: {
		{136, 777, 825, 1193, 2526, 0},
		{212, 846, 926, 1381, 2695, 0},
	},
	Losers: {
		{-80, -97, -141, -220, -343, 0},
		{-128, 125, 162, 275, -63, 0},
	},
	// Racing kings has no pawns.
	Race: {
		{0, 804, 1016, 1332, 2282, 0},
		{0, 870, 872, 1250, 2502, 0},
	},
	ThreeCheck: {
		{144, 850, 891, 1225, 2568, 0},
		{215, 895, 923, 1387, 2709, 0},
	},
	TwoKings: {
		{128, 781, 825, 1276, 2538, 0},
		{213, 854, 915, 1380, 2682, 0},
	},
}

// PieceValue returns the material value of pt in variant v for the phase.
func PieceValue(v Variant, ph Phase, pt board.PieceType) int {
	if !v.IsValid() || pt >= board.NoPieceType {
		return 0
	}
	return pieceValue[v][ph][pt]
}
