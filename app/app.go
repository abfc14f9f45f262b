package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.opentelemetry.io/otel"

	coursedb "github.com/mosley-golf-club/tourney-engine/app/modules/course/infrastructure/repositories"
	leaderboardservice "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/application"
	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
	rosterdb "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories"
	scoreservice "github.com/mosley-golf-club/tourney-engine/app/modules/score/application"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
	"github.com/mosley-golf-club/tourney-engine/config"
	"github.com/mosley-golf-club/tourney-engine/internal/observability"
)

// App wires storage, repositories, and services together.
type App struct {
	Cfg    *config.Config
	Logger *slog.Logger
	db     *bun.DB

	RosterDB rosterdb.Repository
	CourseDB coursedb.Repository
	ScoreDB  scoredb.Repository

	ScoreService       scoreservice.Service
	LeaderboardService leaderboardservice.Service
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(cfg.Observability.LogLevel)

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Instruments register against the global meter provider; without an SDK
	// installed they measure into the otel no-op.
	metrics, err := observability.NewMetrics(otel.GetMeterProvider().Meter("tourney-engine"))
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}
	tracer := otel.GetTracerProvider().Tracer("tourney-engine")

	rosterRepo := &rosterdb.RosterDBImpl{DB: db}
	courseRepo := &coursedb.CourseDBImpl{DB: db}
	scoreRepo := &scoredb.ScoreDBImpl{DB: db}

	scoreSvc := scoreservice.NewScoreService(scoreRepo, rosterRepo, logger, metrics, tracer, db)
	leaderboardSvc := leaderboardservice.NewLeaderboardService(rosterRepo, courseRepo, scoreRepo, logger, metrics, tracer, db)

	leaderboardSvc.SetTournamentContext(leaderboarddomain.TournamentContext(cfg.Tournament.Context))
	leaderboardSvc.SetCutLineScore(cfg.Tournament.CutLineScore)
	leaderboardSvc.SetCutApplied(cfg.Tournament.CutApplied)

	return &App{
		Cfg:                cfg,
		Logger:             logger,
		db:                 db,
		RosterDB:           rosterRepo,
		CourseDB:           courseRepo,
		ScoreDB:            scoreRepo,
		ScoreService:       scoreSvc,
		LeaderboardService: leaderboardSvc,
	}, nil
}

// DB returns the database handle.
func (app *App) DB() *bun.DB {
	return app.db
}

// Close releases the database connection.
func (app *App) Close() error {
	return app.db.Close()
}
