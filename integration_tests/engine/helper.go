package engineintegrationtests

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	coursedb "github.com/mosley-golf-club/tourney-engine/app/modules/course/infrastructure/repositories"
	coursemigrations "github.com/mosley-golf-club/tourney-engine/app/modules/course/infrastructure/repositories/migrations"
	leaderboardservice "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/application"
	rosterdb "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories"
	rostermigrations "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories/migrations"
	scoreservice "github.com/mosley-golf-club/tourney-engine/app/modules/score/application"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
	scoremigrations "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories/migrations"
	"github.com/mosley-golf-club/tourney-engine/integration_tests/containers"
)

type TestDeps struct {
	Ctx         context.Context
	BunDB       *bun.DB
	Roster      *rosterdb.RosterDBImpl
	Courses     *coursedb.CourseDBImpl
	Scores      *scoredb.ScoreDBImpl
	ScoreSvc    scoreservice.Service
	Leaderboard leaderboardservice.Service
}

// SetupTestEngine starts a Postgres container, migrates every module, and
// wires real repositories behind the services.
func SetupTestEngine(t *testing.T) TestDeps {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	})

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(pgdb, pgdialect.New())
	t.Cleanup(func() { db.Close() })

	// Scores reference players, so roster migrates first.
	migrations := []struct {
		module string
		m      *migrate.Migrations
	}{
		{"roster", rostermigrations.Migrations},
		{"course", coursemigrations.Migrations},
		{"score", scoremigrations.Migrations},
	}
	for _, entry := range migrations {
		migrator := migrate.NewMigrator(db, entry.m)
		if err := migrator.Init(ctx); err != nil {
			t.Fatalf("Failed to init migrations for module %s: %v", entry.module, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			t.Fatalf("Failed to run migrations for module %s: %v", entry.module, err)
		}
	}

	roster := &rosterdb.RosterDBImpl{DB: db}
	courses := &coursedb.CourseDBImpl{DB: db}
	scores := &scoredb.ScoreDBImpl{DB: db}

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return TestDeps{
		Ctx:         ctx,
		BunDB:       db,
		Roster:      roster,
		Courses:     courses,
		Scores:      scores,
		ScoreSvc:    scoreservice.NewScoreService(scores, roster, testLogger, nil, nil, db),
		Leaderboard: leaderboardservice.NewLeaderboardService(roster, courses, scores, testLogger, nil, nil, db),
	}
}
