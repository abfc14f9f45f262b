package scoreservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
	rosterdb "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
	"github.com/mosley-golf-club/tourney-engine/internal/observability"
	"github.com/mosley-golf-club/tourney-engine/internal/results"
)

// ScoreRecordedPayload reports a successfully stored score.
type ScoreRecordedPayload struct {
	PlayerID   int64
	DayNumber  int
	HoleNumber int
	Gross      int
}

// ScoreOperationFailedPayload reports a rejected score operation.
type ScoreOperationFailedPayload struct {
	PlayerID   int64
	DayNumber  int
	HoleNumber int
	Reason     string
}

// ScoreOperationResult is the envelope returned by score operations.
type ScoreOperationResult = results.OperationResult[ScoreRecordedPayload, ScoreOperationFailedPayload]

func scoreFailure(entry scoredb.ScoreEntry, reason string) ScoreOperationResult {
	return results.FailureResult[ScoreRecordedPayload](ScoreOperationFailedPayload{
		PlayerID:   entry.PlayerID,
		DayNumber:  entry.DayNumber,
		HoleNumber: entry.HoleNumber,
		Reason:     reason,
	})
}

func validateEntry(entry scoredb.ScoreEntry) string {
	switch {
	case entry.DayNumber < 1 || entry.DayNumber > leaderboarddomain.DayCount:
		return fmt.Sprintf("day number %d out of range 1..%d", entry.DayNumber, leaderboarddomain.DayCount)
	case entry.HoleNumber < 1 || entry.HoleNumber > leaderboarddomain.HolesPerRound:
		return fmt.Sprintf("hole number %d out of range 1..%d", entry.HoleNumber, leaderboarddomain.HolesPerRound)
	case entry.Gross < 1:
		return fmt.Sprintf("gross score %d must be at least 1", entry.Gross)
	default:
		return ""
	}
}

// RecordScore validates and stores one gross score, overwriting any previous
// entry for the same (player, day, hole).
func (s *ScoreService) RecordScore(ctx context.Context, entry scoredb.ScoreEntry) (ScoreOperationResult, error) {
	return withTelemetry(s, ctx, "RecordScore", func(ctx context.Context) (ScoreOperationResult, error) {
		if reason := validateEntry(entry); reason != "" {
			return scoreFailure(entry, reason), nil
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (ScoreOperationResult, error) {
			player, err := s.roster.GetPlayer(ctx, db, entry.PlayerID)
			if err != nil {
				if errors.Is(err, rosterdb.ErrNotFound) {
					return scoreFailure(entry, "unknown player"), nil
				}
				return ScoreOperationResult{}, err
			}
			if !player.Active {
				return scoreFailure(entry, "player is not active"), nil
			}

			if err := s.scores.UpsertScore(ctx, db, &entry); err != nil {
				return ScoreOperationResult{}, err
			}

			s.logger.InfoContext(ctx, "score recorded",
				observability.CorrelationAttr(ctx),
				slog.Int64("player_id", entry.PlayerID),
				slog.Int("day", entry.DayNumber),
				slog.Int("hole", entry.HoleNumber),
				slog.Int("gross", entry.Gross),
			)
			return results.SuccessResult[ScoreRecordedPayload, ScoreOperationFailedPayload](ScoreRecordedPayload{
				PlayerID:   entry.PlayerID,
				DayNumber:  entry.DayNumber,
				HoleNumber: entry.HoleNumber,
				Gross:      entry.Gross,
			}), nil
		})
	})
}

// RemoveScore deletes a score entry, returning a failure payload when the
// entry does not exist.
func (s *ScoreService) RemoveScore(ctx context.Context, playerID int64, day, hole int) (ScoreOperationResult, error) {
	return withTelemetry(s, ctx, "RemoveScore", func(ctx context.Context) (ScoreOperationResult, error) {
		entry := scoredb.ScoreEntry{PlayerID: playerID, DayNumber: day, HoleNumber: hole}
		err := s.scores.DeleteScore(ctx, nil, playerID, day, hole)
		if err != nil {
			if errors.Is(err, scoredb.ErrNotFound) {
				return scoreFailure(entry, "score entry not found"), nil
			}
			return ScoreOperationResult{}, err
		}

		s.logger.InfoContext(ctx, "score removed",
			observability.CorrelationAttr(ctx),
			slog.Int64("player_id", playerID),
			slog.Int("day", day),
			slog.Int("hole", hole),
		)
		return results.SuccessResult[ScoreRecordedPayload, ScoreOperationFailedPayload](ScoreRecordedPayload{
			PlayerID:   playerID,
			DayNumber:  day,
			HoleNumber: hole,
		}), nil
	})
}
