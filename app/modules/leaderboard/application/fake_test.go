package leaderboardservice

import (
	"context"

	"github.com/uptrace/bun"

	coursedb "github.com/mosley-golf-club/tourney-engine/app/modules/course/infrastructure/repositories"
	rosterdb "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
)

// ------------------------
// Fake roster repo
// ------------------------

// FakeRosterRepository provides a programmable stub for rosterdb.Repository.
type FakeRosterRepository struct {
	ActivePlayersFunc func(ctx context.Context, db bun.IDB) ([]rosterdb.Player, error)
	TeamsFunc         func(ctx context.Context, db bun.IDB) ([]rosterdb.Team, error)
}

func NewFakeRosterRepository() *FakeRosterRepository {
	return &FakeRosterRepository{}
}

func (f *FakeRosterRepository) ActivePlayers(ctx context.Context, db bun.IDB) ([]rosterdb.Player, error) {
	if f.ActivePlayersFunc != nil {
		return f.ActivePlayersFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeRosterRepository) GetPlayer(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Player, error) {
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepository) CreatePlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player) error {
	return nil
}

func (f *FakeRosterRepository) SetPlayerActive(ctx context.Context, db bun.IDB, id int64, active bool) error {
	return nil
}

func (f *FakeRosterRepository) AssignToTeam(ctx context.Context, db bun.IDB, playerID int64, teamID *int64) error {
	return nil
}

func (f *FakeRosterRepository) Teams(ctx context.Context, db bun.IDB) ([]rosterdb.Team, error) {
	if f.TeamsFunc != nil {
		return f.TeamsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeRosterRepository) CreateTeam(ctx context.Context, db bun.IDB, team *rosterdb.Team) error {
	return nil
}

// ------------------------
// Fake course repo
// ------------------------

// FakeCourseRepository provides a programmable stub for coursedb.Repository.
type FakeCourseRepository struct {
	HolesFunc func(ctx context.Context, db bun.IDB) ([]coursedb.Hole, error)
}

func NewFakeCourseRepository() *FakeCourseRepository {
	return &FakeCourseRepository{}
}

func (f *FakeCourseRepository) Courses(ctx context.Context, db bun.IDB) ([]coursedb.Course, error) {
	return nil, nil
}

func (f *FakeCourseRepository) CreateCourse(ctx context.Context, db bun.IDB, course *coursedb.Course) error {
	return nil
}

func (f *FakeCourseRepository) Holes(ctx context.Context, db bun.IDB) ([]coursedb.Hole, error) {
	if f.HolesFunc != nil {
		return f.HolesFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeCourseRepository) UpsertHole(ctx context.Context, db bun.IDB, hole *coursedb.Hole) error {
	return nil
}

// ------------------------
// Fake score repo
// ------------------------

// FakeScoreRepository provides a programmable stub for scoredb.Repository.
type FakeScoreRepository struct {
	ScoresFunc func(ctx context.Context, db bun.IDB, day int) ([]scoredb.ScoreEntry, error)
}

func NewFakeScoreRepository() *FakeScoreRepository {
	return &FakeScoreRepository{}
}

func (f *FakeScoreRepository) Scores(ctx context.Context, db bun.IDB, day int) ([]scoredb.ScoreEntry, error) {
	if f.ScoresFunc != nil {
		return f.ScoresFunc(ctx, db, day)
	}
	return nil, nil
}

func (f *FakeScoreRepository) UpsertScore(ctx context.Context, db bun.IDB, entry *scoredb.ScoreEntry) error {
	return nil
}

func (f *FakeScoreRepository) DeleteScore(ctx context.Context, db bun.IDB, playerID int64, day, hole int) error {
	return nil
}
