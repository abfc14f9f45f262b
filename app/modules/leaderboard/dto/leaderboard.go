// Package leaderboarddto declares the tabular schemas for leaderboard rows:
// column headers paired with accessors, so rendering collaborators (spreadsheet
// export, terminal tables) stay decoupled from the row types themselves.
package leaderboarddto

import (
	"fmt"
	"strconv"
	"strings"

	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
)

// Column pairs a header with a row-field accessor.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// DailyColumns is the schema for one day's individual leaderboard.
func DailyColumns() []Column[leaderboarddomain.DailyRow] {
	return []Column[leaderboarddomain.DailyRow]{
		{Header: "Rank", Value: func(r leaderboarddomain.DailyRow) string { return strconv.Itoa(r.Rank) }},
		{Header: "Player", Value: func(r leaderboarddomain.DailyRow) string { return r.PlayerName }},
		{Header: "Handicap", Value: func(r leaderboarddomain.DailyRow) string { return strconv.Itoa(r.Handicap) }},
		{Header: "Gross Pts", Value: func(r leaderboarddomain.DailyRow) string { return strconv.Itoa(r.GrossPoints) }},
		{Header: "Net Pts", Value: func(r leaderboarddomain.DailyRow) string { return strconv.Itoa(r.NetPoints) }},
	}
}

// TournamentColumns is the schema for the overall tournament leaderboard.
// Day columns render blank for days without scores.
func TournamentColumns() []Column[leaderboarddomain.TournamentRow] {
	cols := []Column[leaderboarddomain.TournamentRow]{
		{Header: "Rank", Value: func(r leaderboarddomain.TournamentRow) string { return strconv.Itoa(r.Rank) }},
		{Header: "Player", Value: func(r leaderboarddomain.TournamentRow) string { return r.PlayerName }},
		{Header: "Handicap", Value: func(r leaderboarddomain.TournamentRow) string { return strconv.Itoa(r.Handicap) }},
	}
	for day := 1; day <= leaderboarddomain.DayCount; day++ {
		cols = append(cols, Column[leaderboarddomain.TournamentRow]{
			Header: fmt.Sprintf("Day %d Net", day),
			Value: func(r leaderboarddomain.TournamentRow) string {
				if !r.DaysPlayed[day-1] {
					return ""
				}
				return strconv.Itoa(r.DayNet[day-1])
			},
		})
	}
	return append(cols,
		Column[leaderboarddomain.TournamentRow]{
			Header: "Cut Score",
			Value:  func(r leaderboarddomain.TournamentRow) string { return strconv.Itoa(r.TwoDayScore) },
		},
		Column[leaderboarddomain.TournamentRow]{
			Header: "Total Net",
			Value:  func(r leaderboarddomain.TournamentRow) string { return strconv.Itoa(r.TotalNet) },
		},
	)
}

// TeamColumns is the schema for the team leaderboard.
func TeamColumns() []Column[leaderboarddomain.TeamRow] {
	cols := []Column[leaderboarddomain.TeamRow]{
		{Header: "Rank", Value: func(r leaderboarddomain.TeamRow) string { return strconv.Itoa(r.Rank) }},
		{Header: "Team", Value: func(r leaderboarddomain.TeamRow) string { return r.TeamName }},
	}
	for day := 1; day <= leaderboarddomain.DayCount; day++ {
		cols = append(cols, Column[leaderboarddomain.TeamRow]{
			Header: fmt.Sprintf("Day %d", day),
			Value:  func(r leaderboarddomain.TeamRow) string { return strconv.Itoa(r.DayPoints[day-1]) },
		})
	}
	return append(cols,
		Column[leaderboarddomain.TeamRow]{
			Header: "Total",
			Value:  func(r leaderboarddomain.TeamRow) string { return strconv.Itoa(r.TotalPoints) },
		},
		Column[leaderboarddomain.TeamRow]{
			Header: "Members",
			Value:  func(r leaderboarddomain.TeamRow) string { return strings.Join(r.MemberNames, ", ") },
		},
	)
}
