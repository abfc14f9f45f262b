package leaderboarddomain

import (
	"io"
	"log/slog"
)

const testCourseID = int64(1)

func testCalculator() *Calculator {
	return NewCalculator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestSnapshot builds a snapshot with an 18-hole par-4 course whose stroke
// index equals the hole number.
func newTestSnapshot(players ...Player) *Snapshot {
	snap := &Snapshot{
		Players: players,
		Holes:   make(map[HoleKey]HoleDetail),
		Scores:  make(map[ScoreKey]ScoreEntry),
	}
	for hole := 1; hole <= HolesPerRound; hole++ {
		snap.Holes[HoleKey{CourseID: testCourseID, HoleNumber: hole}] = HoleDetail{Par: 4, StrokeIndex: hole}
	}
	return snap
}

func (s *Snapshot) addScore(playerID int64, day, hole, gross int) *Snapshot {
	s.Scores[ScoreKey{PlayerID: playerID, DayNumber: day, HoleNumber: hole}] = ScoreEntry{
		PlayerID:   playerID,
		CourseID:   testCourseID,
		DayNumber:  day,
		HoleNumber: hole,
		Gross:      gross,
	}
	return s
}

// addRound records the same gross on all 18 holes for one day.
func (s *Snapshot) addRound(playerID int64, day, gross int) *Snapshot {
	for hole := 1; hole <= HolesPerRound; hole++ {
		s.addScore(playerID, day, hole, gross)
	}
	return s
}
