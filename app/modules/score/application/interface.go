package scoreservice

import (
	"context"

	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
)

// Service is the interface for the score service.
type Service interface {
	RecordScore(ctx context.Context, entry scoredb.ScoreEntry) (ScoreOperationResult, error)
	RemoveScore(ctx context.Context, playerID int64, day, hole int) (ScoreOperationResult, error)
	ImportScorecard(ctx context.Context, day int, courseID int64, data []byte) (ScorecardImportResult, error)
}
