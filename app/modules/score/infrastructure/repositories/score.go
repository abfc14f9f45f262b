package scoredb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// ScoreDBImpl implements Repository on top of bun.
type ScoreDBImpl struct {
	DB *bun.DB
}

func (r *ScoreDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

// Scores fetches score entries, optionally filtered to one day (AllDays
// fetches every round).
func (r *ScoreDBImpl) Scores(ctx context.Context, db bun.IDB, day int) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	query := r.idb(db).NewSelect().
		Model(&entries).
		Order("player_id ASC", "day_number ASC", "hole_number ASC")
	if day != AllDays {
		query = query.Where("day_number = ?", day)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}
	return entries, nil
}

func (r *ScoreDBImpl) UpsertScore(ctx context.Context, db bun.IDB, entry *ScoreEntry) error {
	_, err := r.idb(db).NewInsert().
		Model(entry).
		On("CONFLICT (player_id, day_number, hole_number) DO UPDATE").
		Set("gross = EXCLUDED.gross, course_id = EXCLUDED.course_id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert score for player %d day %d hole %d: %w",
			entry.PlayerID, entry.DayNumber, entry.HoleNumber, err)
	}
	return nil
}

func (r *ScoreDBImpl) DeleteScore(ctx context.Context, db bun.IDB, playerID int64, day, hole int) error {
	res, err := r.idb(db).NewDelete().
		Model((*ScoreEntry)(nil)).
		Where("player_id = ?", playerID).
		Where("day_number = ?", day).
		Where("hole_number = ?", hole).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete score for player %d day %d hole %d: %w", playerID, day, hole, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
