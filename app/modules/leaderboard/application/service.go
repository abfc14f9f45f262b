package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	coursedb "github.com/mosley-golf-club/tourney-engine/app/modules/course/infrastructure/repositories"
	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
	rosterdb "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
	"github.com/mosley-golf-club/tourney-engine/internal/observability"
	"github.com/mosley-golf-club/tourney-engine/internal/results"
)

// LeaderboardService loads tournament snapshots and computes the three
// leaderboard views. Configuration mutators take effect on the next refresh,
// never retroactively; each refresh recomputes from a fresh snapshot and
// swaps the visible rows atomically.
type LeaderboardService struct {
	roster  rosterdb.Repository
	courses coursedb.Repository
	scores  scoredb.Repository
	logger  *slog.Logger
	metrics observability.Metrics
	tracer  trace.Tracer
	db      *bun.DB
	calc    *leaderboarddomain.Calculator

	mu         sync.Mutex
	cfg        leaderboarddomain.TournamentConfig
	daily      map[int][]leaderboarddomain.DailyRow
	tournament map[leaderboarddomain.TournamentContext][]leaderboarddomain.TournamentRow
	teams      []leaderboarddomain.TeamRow
	scoredDays []int
}

// NewLeaderboardService creates a LeaderboardService.
func NewLeaderboardService(
	roster rosterdb.Repository,
	courses coursedb.Repository,
	scores scoredb.Repository,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *LeaderboardService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NewNoopMetrics()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("leaderboard")
	}
	return &LeaderboardService{
		roster:  roster,
		courses: courses,
		scores:  scores,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
		calc:    leaderboarddomain.NewCalculator(logger),
		cfg: leaderboarddomain.TournamentConfig{
			Context: leaderboarddomain.ContextMosleyOpen,
		},
		daily:      make(map[int][]leaderboarddomain.DailyRow),
		tournament: make(map[leaderboarddomain.TournamentContext][]leaderboarddomain.TournamentRow),
	}
}

// SetTournamentContext selects the bracket returned by TournamentRows after
// the next refresh.
func (s *LeaderboardService) SetTournamentContext(ctx leaderboarddomain.TournamentContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Context = ctx
}

// SetCutLineScore sets the two-day net score required to make the cut.
func (s *LeaderboardService) SetCutLineScore(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.CutLineScore = score
}

// SetCutApplied toggles the cut partition.
func (s *LeaderboardService) SetCutApplied(applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.CutApplied = applied
}

func (s *LeaderboardService) config() leaderboarddomain.TournamentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// DailyRows returns the last refreshed rows for one day's leaderboard.
func (s *LeaderboardService) DailyRows(day int) []leaderboarddomain.DailyRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]leaderboarddomain.DailyRow, len(s.daily[day]))
	copy(rows, s.daily[day])
	return rows
}

// TournamentRows returns the last refreshed rows for the configured context.
func (s *LeaderboardService) TournamentRows() []leaderboarddomain.TournamentRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]leaderboarddomain.TournamentRow, len(s.tournament[s.cfg.Context]))
	copy(rows, s.tournament[s.cfg.Context])
	return rows
}

// TournamentRowsFor returns the last refreshed rows for an explicit context.
func (s *LeaderboardService) TournamentRowsFor(ctx leaderboarddomain.TournamentContext) []leaderboarddomain.TournamentRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]leaderboarddomain.TournamentRow, len(s.tournament[ctx]))
	copy(rows, s.tournament[ctx])
	return rows
}

// TeamRows returns the last refreshed team leaderboard.
func (s *LeaderboardService) TeamRows() []leaderboarddomain.TeamRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]leaderboarddomain.TeamRow, len(s.teams))
	copy(rows, s.teams)
	return rows
}

// DaysWithScores reports which days had scores at the last refresh, so
// callers can hide empty day columns.
func (s *LeaderboardService) DaysWithScores() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make([]int, len(s.scoredDays))
	copy(days, s.scoredDays)
	return days
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *LeaderboardService,
	ctx context.Context,
	operationName string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "critical panic recovered",
				observability.CorrelationAttr(ctx),
				slog.String("operation", operationName),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "operation failed with error",
			observability.CorrelationAttr(ctx),
			slog.String("operation", operationName),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "operation returned failure result",
			observability.CorrelationAttr(ctx),
			slog.String("operation", operationName),
			slog.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}

	return result, nil
}
