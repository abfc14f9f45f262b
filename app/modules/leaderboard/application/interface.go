package leaderboardservice

import (
	"context"

	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
)

// Service is the interface for the leaderboard service.
type Service interface {
	RefreshDaily(ctx context.Context, day int) (RefreshResult, error)
	RefreshTournament(ctx context.Context) (RefreshResult, error)
	RefreshTeams(ctx context.Context) (RefreshResult, error)
	RefreshAll(ctx context.Context) error
	ExportWorkbook(ctx context.Context) (ExportResult, error)

	DailyRows(day int) []leaderboarddomain.DailyRow
	TournamentRows() []leaderboarddomain.TournamentRow
	TournamentRowsFor(ctx leaderboarddomain.TournamentContext) []leaderboarddomain.TournamentRow
	TeamRows() []leaderboarddomain.TeamRow
	DaysWithScores() []int

	SetTournamentContext(ctx leaderboarddomain.TournamentContext)
	SetCutLineScore(score int)
	SetCutApplied(applied bool)
}
