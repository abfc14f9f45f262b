package leaderboarddomain

import (
	"cmp"
	"slices"
)

// DailyRow is one player's line on a single day's individual leaderboard.
type DailyRow struct {
	PlayerID    int64
	PlayerName  string
	Handicap    int
	GrossPoints int
	NetPoints   int
	Rank        int
}

// DailyLeaderboard ranks all active players with at least one score entry on
// the given day. Net points subtract the player's full handicap once for the
// day; players without scores that day are excluded entirely rather than shown
// with zero.
func (c *Calculator) DailyLeaderboard(day int, snap *Snapshot) []DailyRow {
	var rows []DailyRow
	for _, player := range snap.Players {
		if !player.Active {
			continue
		}
		gross, played := c.grossPointsForDay(player, day, snap)
		if !played {
			continue
		}
		rows = append(rows, DailyRow{
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			Handicap:    player.Handicap,
			GrossPoints: gross,
			NetPoints:   gross - player.Handicap,
		})
	}

	slices.SortFunc(rows, func(a, b DailyRow) int {
		if v := cmp.Compare(b.NetPoints, a.NetPoints); v != 0 {
			return v
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})

	totals := make([]int, len(rows))
	for i := range rows {
		totals[i] = rows[i].NetPoints
	}
	for i, rank := range competitionRanks(totals) {
		rows[i].Rank = rank
	}
	return rows
}
