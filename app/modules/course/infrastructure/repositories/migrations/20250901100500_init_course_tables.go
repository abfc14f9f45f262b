package coursemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	coursedb "github.com/mosley-golf-club/tourney-engine/app/modules/course/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating course tables...")

		if _, err := db.NewCreateTable().Model((*coursedb.Course)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create courses table: %w", err)
		}
		if _, err := db.NewCreateTable().Model((*coursedb.Hole)(nil)).
			IfNotExists().
			ForeignKey(`("course_id") REFERENCES "courses" ("id")`).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create holes table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping course tables...")

		if _, err := db.NewDropTable().Model((*coursedb.Hole)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*coursedb.Course)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
