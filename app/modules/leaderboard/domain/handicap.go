package leaderboarddomain

// HoleExcluded is the sentinel returned by StrokesReceived under the giveback
// regime: the hole's score must be excluded from that player's net calculation.
const HoleExcluded = -1

// allocationCeiling is the handicap above which the giveback regime applies.
const allocationCeiling = 36

// StrokesReceived computes the strokes a player receives on a hole from the
// player's handicap and the hole's stroke index (1..18, 1 = hardest).
//
// For handicaps up to 36, strokes accumulate across three tiers of the
// effective allowance (36 - handicap): one stroke per tier the allowance
// reaches at this index. For handicaps above 36, half the excess is given
// back by voiding the easiest holes, signalled with HoleExcluded; the rest
// receive no strokes.
func StrokesReceived(handicap, strokeIndex int) int {
	if handicap > allocationCeiling {
		giveback := (handicap - allocationCeiling) / 2
		if strokeIndex > HolesPerRound-giveback {
			return HoleExcluded
		}
		return 0
	}

	effective := allocationCeiling - handicap
	strokes := 0
	if effective >= strokeIndex {
		strokes++
	}
	if effective >= HolesPerRound+strokeIndex {
		strokes++
	}
	if effective >= 2*HolesPerRound+strokeIndex {
		strokes++
	}
	return strokes
}
