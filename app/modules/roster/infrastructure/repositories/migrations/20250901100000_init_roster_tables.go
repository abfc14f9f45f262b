package rostermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	rosterdb "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating roster tables...")

		if _, err := db.NewCreateTable().Model((*rosterdb.Team)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create teams table: %w", err)
		}
		if _, err := db.NewCreateTable().Model((*rosterdb.Player)(nil)).
			IfNotExists().
			ForeignKey(`("team_id") REFERENCES "teams" ("id")`).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create players table: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
		`); err != nil {
			return fmt.Errorf("failed to index players.team_id: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping roster tables...")

		if _, err := db.NewDropTable().Model((*rosterdb.Player)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*rosterdb.Team)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
