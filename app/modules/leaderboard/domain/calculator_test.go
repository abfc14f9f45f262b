package leaderboarddomain

import "testing"

func TestNetStablefordForHole(t *testing.T) {
	calc := testCalculator()
	player := Player{ID: 1, Name: "Reggie", Handicap: 20, Active: true}

	t.Run("applies per-hole strokes before conversion", func(t *testing.T) {
		snap := newTestSnapshot(player)
		// hole 5: stroke index 5, handicap 20 receives 1 stroke.
		// gross 5 -> net 4 -> differential 0 -> 2 points.
		snap.addScore(player.ID, 1, 5, 5)

		points, ok := calc.NetStablefordForHole(player, 1, 5, snap)
		if !ok {
			t.Fatal("expected a defined result")
		}
		if points != 2 {
			t.Fatalf("expected 2 points, got %d", points)
		}
	})

	t.Run("absent score is absent, not zero", func(t *testing.T) {
		snap := newTestSnapshot(player)
		if _, ok := calc.NetStablefordForHole(player, 1, 5, snap); ok {
			t.Fatal("expected absent result for unplayed hole")
		}
	})

	t.Run("missing hole details excludes the hole", func(t *testing.T) {
		snap := newTestSnapshot(player)
		snap.Scores[ScoreKey{PlayerID: player.ID, DayNumber: 1, HoleNumber: 3}] = ScoreEntry{
			PlayerID:   player.ID,
			CourseID:   999,
			DayNumber:  1,
			HoleNumber: 3,
			Gross:      4,
		}
		if _, ok := calc.NetStablefordForHole(player, 1, 3, snap); ok {
			t.Fatal("expected exclusion for score referencing unknown hole")
		}
	})

	t.Run("giveback sentinel excludes the hole", func(t *testing.T) {
		high := Player{ID: 2, Name: "Buck", Handicap: 44, Active: true}
		snap := newTestSnapshot(high)
		snap.addScore(high.ID, 1, 16, 6) // stroke index 16 > 18-4
		if _, ok := calc.NetStablefordForHole(high, 1, 16, snap); ok {
			t.Fatal("expected exclusion under the giveback regime")
		}
	})

	t.Run("out-of-table differential excludes the hole instead of trapping", func(t *testing.T) {
		snap := newTestSnapshot(player)
		snap.addScore(player.ID, 1, 18, 12) // net 12 - par 4 = +8
		if _, ok := calc.NetStablefordForHole(player, 1, 18, snap); ok {
			t.Fatal("expected exclusion for differential outside the table")
		}
	})
}
