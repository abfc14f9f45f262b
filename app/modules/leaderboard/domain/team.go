package leaderboarddomain

import (
	"cmp"
	"slices"
)

// TeamRow is one team's line on the team leaderboard.
type TeamRow struct {
	TeamID      int64
	TeamName    string
	DayPoints   [DayCount]int
	TotalPoints int
	Rank        int
	MemberNames []string
}

// TeamLeaderboard ranks teams by best-ball Stableford totals. For every hole
// and day, each member's net points come from the per-hole stroke-allocation
// scheme; the top K defined values are summed, dropping the single worst
// contributor. K is fixed once from the largest team's size and applied to
// every team, not recomputed per team.
func (c *Calculator) TeamLeaderboard(snap *Snapshot) []TeamRow {
	k := countingScores(snap.Teams)

	var rows []TeamRow
	for _, team := range snap.Teams {
		row := TeamRow{
			TeamID:   team.ID,
			TeamName: team.Name,
		}
		for _, member := range team.Members {
			row.MemberNames = append(row.MemberNames, member.Name)
		}

		for day := 1; day <= DayCount; day++ {
			dayTotal := 0
			for hole := 1; hole <= HolesPerRound; hole++ {
				dayTotal += c.teamHolePoints(team, day, hole, k, snap)
			}
			row.DayPoints[day-1] = dayTotal
			row.TotalPoints += dayTotal
		}
		rows = append(rows, row)
	}

	slices.SortFunc(rows, func(a, b TeamRow) int {
		if v := cmp.Compare(b.TotalPoints, a.TotalPoints); v != 0 {
			return v
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})

	totals := make([]int, len(rows))
	for i := range rows {
		totals[i] = rows[i].TotalPoints
	}
	for i, rank := range competitionRanks(totals) {
		rows[i].Rank = rank
	}
	return rows
}

// teamHolePoints sums the top k member net scores for one hole on one day.
func (c *Calculator) teamHolePoints(team Team, day, hole, k int, snap *Snapshot) int {
	var nets []int
	for _, member := range team.Members {
		if !member.Active {
			continue
		}
		points, ok := c.NetStablefordForHole(member, day, hole, snap)
		if !ok {
			continue
		}
		nets = append(nets, int(points))
	}

	slices.SortFunc(nets, func(a, b int) int { return cmp.Compare(b, a) })
	if len(nets) > k {
		nets = nets[:k]
	}

	total := 0
	for _, n := range nets {
		total += n
	}
	return total
}

// countingScores fixes the uniform top-K from the largest team's member count:
// every team counts largest-1 scores per hole (minimum 1).
func countingScores(teams []Team) int {
	largest := 0
	for _, team := range teams {
		if len(team.Members) > largest {
			largest = len(team.Members)
		}
	}
	return max(1, largest-1)
}
