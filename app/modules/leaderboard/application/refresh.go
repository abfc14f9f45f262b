package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"

	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
	"github.com/mosley-golf-club/tourney-engine/internal/observability"
	"github.com/mosley-golf-club/tourney-engine/internal/results"
)

// LeaderboardRefreshedPayload reports a completed recomputation.
type LeaderboardRefreshedPayload struct {
	View      string `json:"view"`
	DayNumber int    `json:"day_number,omitempty"`
	RowCount  int    `json:"row_count"`
}

// RefreshFailedPayload carries the business reason a refresh was refused.
type RefreshFailedPayload struct {
	View   string `json:"view"`
	Reason string `json:"reason"`
}

// RefreshResult is the outcome envelope for refresh operations.
type RefreshResult = results.OperationResult[LeaderboardRefreshedPayload, RefreshFailedPayload]

// RefreshDaily recomputes one day's individual leaderboard from current storage.
func (s *LeaderboardService) RefreshDaily(ctx context.Context, day int) (RefreshResult, error) {
	return withTelemetry(s, ctx, "RefreshDaily", func(ctx context.Context) (RefreshResult, error) {
		if day < 1 || day > leaderboarddomain.DayCount {
			return results.FailureResult[LeaderboardRefreshedPayload](RefreshFailedPayload{
				View:   "daily",
				Reason: fmt.Sprintf("day number %d out of range 1..%d", day, leaderboarddomain.DayCount),
			}), nil
		}

		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			return RefreshResult{}, err
		}

		rows := s.calc.DailyLeaderboard(day, snap)

		s.mu.Lock()
		s.daily[day] = rows
		s.scoredDays = snap.DaysWithScores()
		s.mu.Unlock()

		s.metrics.RecordRowsComputed(ctx, "daily", len(rows))
		s.logger.InfoContext(ctx, "daily leaderboard refreshed",
			observability.CorrelationAttr(ctx),
			slog.Int("day", day),
			slog.Int("rows", len(rows)),
		)
		return results.SuccessResult[LeaderboardRefreshedPayload, RefreshFailedPayload](LeaderboardRefreshedPayload{
			View:      "daily",
			DayNumber: day,
			RowCount:  len(rows),
		}), nil
	})
}

// RefreshTournament recomputes the overall leaderboard for both contexts under
// the current cut configuration, so switching contexts afterwards needs no
// further storage reads.
func (s *LeaderboardService) RefreshTournament(ctx context.Context) (RefreshResult, error) {
	return withTelemetry(s, ctx, "RefreshTournament", func(ctx context.Context) (RefreshResult, error) {
		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			return RefreshResult{}, err
		}

		cfg := s.config()
		computed := make(map[leaderboarddomain.TournamentContext][]leaderboarddomain.TournamentRow, 2)
		for _, tc := range []leaderboarddomain.TournamentContext{
			leaderboarddomain.ContextMosleyOpen,
			leaderboarddomain.ContextTwistedCreek,
		} {
			ctxCfg := cfg
			ctxCfg.Context = tc
			computed[tc] = s.calc.TournamentLeaderboard(ctxCfg, snap)
		}

		s.mu.Lock()
		s.tournament = computed
		s.scoredDays = snap.DaysWithScores()
		visible := len(computed[s.cfg.Context])
		s.mu.Unlock()

		s.metrics.RecordRowsComputed(ctx, "tournament", visible)
		s.logger.InfoContext(ctx, "tournament leaderboard refreshed",
			observability.CorrelationAttr(ctx),
			slog.String("context", string(cfg.Context)),
			slog.Bool("cut_applied", cfg.CutApplied),
			slog.Int("rows", visible),
		)
		return results.SuccessResult[LeaderboardRefreshedPayload, RefreshFailedPayload](LeaderboardRefreshedPayload{
			View:     "tournament",
			RowCount: visible,
		}), nil
	})
}

// RefreshTeams recomputes the team leaderboard from current storage.
func (s *LeaderboardService) RefreshTeams(ctx context.Context) (RefreshResult, error) {
	return withTelemetry(s, ctx, "RefreshTeams", func(ctx context.Context) (RefreshResult, error) {
		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			return RefreshResult{}, err
		}

		rows := s.calc.TeamLeaderboard(snap)

		s.mu.Lock()
		s.teams = rows
		s.scoredDays = snap.DaysWithScores()
		s.mu.Unlock()

		s.metrics.RecordRowsComputed(ctx, "team", len(rows))
		s.logger.InfoContext(ctx, "team leaderboard refreshed",
			observability.CorrelationAttr(ctx),
			slog.Int("rows", len(rows)),
		)
		return results.SuccessResult[LeaderboardRefreshedPayload, RefreshFailedPayload](LeaderboardRefreshedPayload{
			View:     "team",
			RowCount: len(rows),
		}), nil
	})
}

// RefreshAll recomputes every view: all scored days, both tournament contexts,
// and the team standings.
func (s *LeaderboardService) RefreshAll(ctx context.Context) error {
	for day := 1; day <= leaderboarddomain.DayCount; day++ {
		if _, err := s.RefreshDaily(ctx, day); err != nil {
			return err
		}
	}
	if _, err := s.RefreshTournament(ctx); err != nil {
		return err
	}
	_, err := s.RefreshTeams(ctx)
	return err
}
