package leaderboarddomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTwoDayCutScore(t *testing.T) {
	calc := testCalculator()

	t.Run("floors the handicap subtraction at the cut allowance", func(t *testing.T) {
		// 18 bogeys = 18 gross points per day; handicap 10 is floored to 16.
		low := Player{ID: 1, Name: "Alma", Handicap: 10, Active: true}
		snap := newTestSnapshot(low)
		snap.addRound(low.ID, 1, 5)
		snap.addRound(low.ID, 2, 5)

		if got := calc.TwoDayCutScore(low, snap); got != 4 {
			t.Fatalf("expected cut score 4 (2*(18-16)), got %d", got)
		}
	})

	t.Run("ignores day three entirely", func(t *testing.T) {
		p := Player{ID: 1, Name: "Alma", Handicap: 20, Active: true}
		snap := newTestSnapshot(p)
		snap.addRound(p.ID, 1, 4)
		snap.addRound(p.ID, 3, 4)

		if got := calc.TwoDayCutScore(p, snap); got != 36-20 {
			t.Fatalf("expected cut score from day one only, got %d", got)
		}
	})
}

func TestTournamentLeaderboard(t *testing.T) {
	calc := testCalculator()

	t.Run("context allowances differ for the same round", func(t *testing.T) {
		// 18 pars = 36 gross points; handicap 10.
		// Twisted Creek net = 36-10 = 26; Mosley Open net = 36-16 = 20.
		p := Player{ID: 1, Name: "Alma", Handicap: 10, Active: true}
		snap := newTestSnapshot(p)
		snap.addRound(p.ID, 1, 4)

		open := calc.TournamentLeaderboard(TournamentConfig{Context: ContextMosleyOpen}, snap)
		creek := calc.TournamentLeaderboard(TournamentConfig{Context: ContextTwistedCreek}, snap)

		if open[0].TotalNet != 20 {
			t.Fatalf("expected Mosley Open net 20, got %d", open[0].TotalNet)
		}
		if creek[0].TotalNet != 26 {
			t.Fatalf("expected Twisted Creek net 26, got %d", creek[0].TotalNet)
		}
	})

	t.Run("without a cut both contexts show the whole field", func(t *testing.T) {
		players := []Player{
			{ID: 1, Name: "Alma", Handicap: 10, Active: true},
			{ID: 2, Name: "Bert", Handicap: 30, Active: true},
		}
		snap := newTestSnapshot(players...)
		for _, p := range players {
			snap.addRound(p.ID, 1, 4)
		}

		open := calc.TournamentLeaderboard(TournamentConfig{Context: ContextMosleyOpen}, snap)
		creek := calc.TournamentLeaderboard(TournamentConfig{Context: ContextTwistedCreek}, snap)
		if len(open) != 2 || len(creek) != 2 {
			t.Fatalf("expected both contexts to hold 2 rows, got %d and %d", len(open), len(creek))
		}
	})

	t.Run("an applied cut partitions every player into exactly one context", func(t *testing.T) {
		players := []Player{
			{ID: 1, Name: "Alma", Handicap: 10, Active: true}, // cut score 2*(36-16)=40
			{ID: 2, Name: "Bert", Handicap: 30, Active: true}, // 18 bogeys: 2*(18-30)=-24
			{ID: 3, Name: "Cleo", Handicap: 16, Active: true}, // 2*(36-16)=40
		}
		snap := newTestSnapshot(players...)
		for day := 1; day <= 2; day++ {
			snap.addRound(1, day, 4)
			snap.addRound(2, day, 5)
			snap.addRound(3, day, 4)
		}

		cfg := TournamentConfig{CutLineScore: 10, CutApplied: true}
		cfg.Context = ContextMosleyOpen
		open := calc.TournamentLeaderboard(cfg, snap)
		cfg.Context = ContextTwistedCreek
		creek := calc.TournamentLeaderboard(cfg, snap)

		seen := make(map[int64]int)
		for _, row := range open {
			seen[row.PlayerID]++
		}
		for _, row := range creek {
			seen[row.PlayerID]++
		}
		for _, p := range players {
			if seen[p.ID] != 1 {
				t.Fatalf("player %d appears in %d contexts, want exactly 1", p.ID, seen[p.ID])
			}
		}
		if len(open) != 2 || len(creek) != 1 {
			t.Fatalf("unexpected partition sizes: open=%d creek=%d", len(open), len(creek))
		}
	})

	t.Run("totals sum only the days with scores", func(t *testing.T) {
		p := Player{ID: 1, Name: "Alma", Handicap: 20, Active: true}
		snap := newTestSnapshot(p)
		snap.addRound(p.ID, 1, 4)
		snap.addRound(p.ID, 3, 4)

		rows := calc.TournamentLeaderboard(TournamentConfig{Context: ContextTwistedCreek}, snap)
		row := rows[0]
		if row.DaysPlayed != [DayCount]bool{true, false, true} {
			t.Fatalf("unexpected days played: %+v", row.DaysPlayed)
		}
		if row.TotalNet != 2*(36-20) {
			t.Fatalf("expected total over two days, got %d", row.TotalNet)
		}
	})

	t.Run("recomputing with unchanged input yields identical rows", func(t *testing.T) {
		players := []Player{
			{ID: 1, Name: "Alma", Handicap: 18, Active: true},
			{ID: 2, Name: "Bert", Handicap: 18, Active: true},
		}
		snap := newTestSnapshot(players...)
		snap.addRound(1, 1, 4)
		snap.addRound(2, 1, 4)

		cfg := TournamentConfig{Context: ContextMosleyOpen}
		first := calc.TournamentLeaderboard(cfg, snap)
		second := calc.TournamentLeaderboard(cfg, snap)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("refresh not idempotent (-first +second):\n%s", diff)
		}
	})
}
