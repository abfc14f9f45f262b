package scoreservice

import (
	"context"

	"github.com/uptrace/bun"

	rosterdb "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
)

// ------------------------
// Fake score repo
// ------------------------

// FakeScoreRepository provides a programmable stub for scoredb.Repository.
type FakeScoreRepository struct {
	trace []string

	ScoresFunc      func(ctx context.Context, db bun.IDB, day int) ([]scoredb.ScoreEntry, error)
	UpsertScoreFunc func(ctx context.Context, db bun.IDB, entry *scoredb.ScoreEntry) error
	DeleteScoreFunc func(ctx context.Context, db bun.IDB, playerID int64, day, hole int) error

	Upserted []scoredb.ScoreEntry
}

func NewFakeScoreRepository() *FakeScoreRepository {
	return &FakeScoreRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeScoreRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoreRepository) Scores(ctx context.Context, db bun.IDB, day int) ([]scoredb.ScoreEntry, error) {
	f.record("Scores")
	if f.ScoresFunc != nil {
		return f.ScoresFunc(ctx, db, day)
	}
	return nil, nil
}

func (f *FakeScoreRepository) UpsertScore(ctx context.Context, db bun.IDB, entry *scoredb.ScoreEntry) error {
	f.record("UpsertScore")
	f.Upserted = append(f.Upserted, *entry)
	if f.UpsertScoreFunc != nil {
		return f.UpsertScoreFunc(ctx, db, entry)
	}
	return nil
}

func (f *FakeScoreRepository) DeleteScore(ctx context.Context, db bun.IDB, playerID int64, day, hole int) error {
	f.record("DeleteScore")
	if f.DeleteScoreFunc != nil {
		return f.DeleteScoreFunc(ctx, db, playerID, day, hole)
	}
	return nil
}

// ------------------------
// Fake roster repo
// ------------------------

// FakeRosterRepository provides a programmable stub for rosterdb.Repository.
type FakeRosterRepository struct {
	ActivePlayersFunc func(ctx context.Context, db bun.IDB) ([]rosterdb.Player, error)
	GetPlayerFunc     func(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Player, error)
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
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, db, id)
	}
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
	return nil, nil
}

func (f *FakeRosterRepository) CreateTeam(ctx context.Context, db bun.IDB, team *rosterdb.Team) error {
	return nil
}
