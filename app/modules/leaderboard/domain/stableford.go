package leaderboarddomain

// Points uses a custom type to keep Stableford arithmetic out of plain ints.
type Points int

// Differential bounds of the Stableford conversion table. Gross scores more
// than three over or five under par are treated as data errors, not as zeros.
const (
	MinDifferential = -5
	MaxDifferential = 3
)

var stablefordTable = map[int]Points{
	-5: 12,
	-4: 10,
	-3: 8,
	-2: 6,
	-1: 4,
	0:  2,
	1:  1,
	2:  0,
	3:  -1,
}

// PointsForDifferential converts a (gross - par) differential to Stableford
// points. The second return value is false for differentials outside the
// table; callers must exclude such holes from totals rather than score them
// as zero.
func PointsForDifferential(differential int) (Points, bool) {
	points, ok := stablefordTable[differential]
	return points, ok
}
