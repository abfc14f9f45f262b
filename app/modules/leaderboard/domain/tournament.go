package leaderboarddomain

import (
	"cmp"
	"slices"
)

// TournamentContext selects which bracket a tournament leaderboard is computed
// for. Under an applied cut the Mosley Open holds the players who made the
// cut and Twisted Creek is the consolation bracket; with no cut applied both
// contexts show the whole field.
type TournamentContext string

const (
	ContextMosleyOpen   TournamentContext = "mosley_open"
	ContextTwistedCreek TournamentContext = "twisted_creek"
)

// cutAllowanceFloor is the forced minimum handicap subtraction used by the
// two-day cut metric and by Mosley Open nets, regardless of actual handicap.
const cutAllowanceFloor = 16

// cutDays is how many rounds the cut metric covers.
const cutDays = 2

// TournamentConfig is supplied per computation; the calculator itself keeps
// no mutable tournament state.
type TournamentConfig struct {
	Context      TournamentContext
	CutLineScore int
	CutApplied   bool
}

// TournamentRow is one player's line on the overall tournament leaderboard.
// Day slices are indexed day-1; DaysPlayed marks which days contribute.
type TournamentRow struct {
	PlayerID    int64
	PlayerName  string
	Handicap    int
	DayGross    [DayCount]int
	DayNet      [DayCount]int
	DaysPlayed  [DayCount]bool
	TwoDayScore int
	TotalNet    int
	Rank        int
}

// TwoDayCutScore computes the rolling cut metric: net Stableford points over
// days 1–2 with the handicap subtraction floored at the cut allowance for
// every player.
func (c *Calculator) TwoDayCutScore(player Player, snap *Snapshot) int {
	total := 0
	for day := 1; day <= cutDays; day++ {
		gross, played := c.grossPointsForDay(player, day, snap)
		if !played {
			continue
		}
		total += gross - max(cutAllowanceFloor, player.Handicap)
	}
	return total
}

// TournamentLeaderboard ranks active players across all days for the
// configured context. Mosley Open nets subtract max(floor, handicap) per day;
// Twisted Creek nets subtract the plain handicap. With the cut applied, a
// player appears in exactly one of the two contexts, decided by the two-day
// cut metric against the cut line.
func (c *Calculator) TournamentLeaderboard(cfg TournamentConfig, snap *Snapshot) []TournamentRow {
	var rows []TournamentRow
	for _, player := range snap.Players {
		if !player.Active {
			continue
		}

		cutScore := c.TwoDayCutScore(player, snap)
		if cfg.CutApplied {
			madeCut := cutScore >= cfg.CutLineScore
			if cfg.Context == ContextMosleyOpen && !madeCut {
				continue
			}
			if cfg.Context == ContextTwistedCreek && madeCut {
				continue
			}
		}

		row := TournamentRow{
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			Handicap:    player.Handicap,
			TwoDayScore: cutScore,
		}
		participated := false
		for day := 1; day <= DayCount; day++ {
			gross, played := c.grossPointsForDay(player, day, snap)
			if !played {
				continue
			}
			participated = true
			net := gross - contextAllowance(cfg.Context, player.Handicap)
			row.DayGross[day-1] = gross
			row.DayNet[day-1] = net
			row.DaysPlayed[day-1] = true
			row.TotalNet += net
		}
		if !participated {
			continue
		}
		rows = append(rows, row)
	}

	slices.SortFunc(rows, func(a, b TournamentRow) int {
		if v := cmp.Compare(b.TotalNet, a.TotalNet); v != 0 {
			return v
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})

	totals := make([]int, len(rows))
	for i := range rows {
		totals[i] = rows[i].TotalNet
	}
	for i, rank := range competitionRanks(totals) {
		rows[i].Rank = rank
	}
	return rows
}

func contextAllowance(ctx TournamentContext, handicap int) int {
	if ctx == ContextMosleyOpen {
		return max(cutAllowanceFloor, handicap)
	}
	return handicap
}
