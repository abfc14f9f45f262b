package scoredb

import (
	"context"

	"github.com/uptrace/bun"
)

// AllDays selects every round when passed to Scores.
const AllDays = 0

// Repository is the storage contract for score entries.
type Repository interface {
	Scores(ctx context.Context, db bun.IDB, day int) ([]ScoreEntry, error)
	UpsertScore(ctx context.Context, db bun.IDB, entry *ScoreEntry) error
	DeleteScore(ctx context.Context, db bun.IDB, playerID int64, day, hole int) error
}
