package scoremigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating score table...")

		if _, err := db.NewCreateTable().Model((*scoredb.ScoreEntry)(nil)).
			IfNotExists().
			ForeignKey(`("player_id") REFERENCES "players" ("id")`).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create scores table: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_scores_day_number ON scores(day_number);
		`); err != nil {
			return fmt.Errorf("failed to index scores.day_number: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping score table...")

		if _, err := db.NewDropTable().Model((*scoredb.ScoreEntry)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
