package scoreservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"

	rosterdb "github.com/mosley-golf-club/tourney-engine/app/modules/roster/infrastructure/repositories"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
)

func testService(scores *FakeScoreRepository, roster *FakeRosterRepository) *ScoreService {
	return NewScoreService(
		scores,
		roster,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		nil,
		nil,
	)
}

func activePlayer(id int64) *rosterdb.Player {
	return &rosterdb.Player{ID: id, Name: "Alma", Handicap: 20, Active: true}
}

func TestRecordScore(t *testing.T) {
	validEntry := scoredb.ScoreEntry{PlayerID: 1, CourseID: 1, DayNumber: 2, HoleNumber: 7, Gross: 5}

	tests := []struct {
		name        string
		entry       scoredb.ScoreEntry
		setupRoster func(*FakeRosterRepository)
		setupScores func(*FakeScoreRepository)
		wantErr     bool
		wantFailure string
		wantUpsert  bool
	}{
		{
			name:  "happy path",
			entry: validEntry,
			setupRoster: func(f *FakeRosterRepository) {
				f.GetPlayerFunc = func(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Player, error) {
					return activePlayer(id), nil
				}
			},
			wantUpsert: true,
		},
		{
			name:        "day out of range",
			entry:       scoredb.ScoreEntry{PlayerID: 1, DayNumber: 4, HoleNumber: 7, Gross: 5},
			wantFailure: "day number 4 out of range 1..3",
		},
		{
			name:        "hole out of range",
			entry:       scoredb.ScoreEntry{PlayerID: 1, DayNumber: 1, HoleNumber: 19, Gross: 5},
			wantFailure: "hole number 19 out of range 1..18",
		},
		{
			name:        "gross below one",
			entry:       scoredb.ScoreEntry{PlayerID: 1, DayNumber: 1, HoleNumber: 1, Gross: 0},
			wantFailure: "gross score 0 must be at least 1",
		},
		{
			name:        "unknown player",
			entry:       validEntry,
			wantFailure: "unknown player",
		},
		{
			name:  "inactive player",
			entry: validEntry,
			setupRoster: func(f *FakeRosterRepository) {
				f.GetPlayerFunc = func(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Player, error) {
					p := activePlayer(id)
					p.Active = false
					return p, nil
				}
			},
			wantFailure: "player is not active",
		},
		{
			name:  "storage error surfaces as error",
			entry: validEntry,
			setupRoster: func(f *FakeRosterRepository) {
				f.GetPlayerFunc = func(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Player, error) {
					return activePlayer(id), nil
				}
			},
			setupScores: func(f *FakeScoreRepository) {
				f.UpsertScoreFunc = func(ctx context.Context, db bun.IDB, entry *scoredb.ScoreEntry) error {
					return errors.New("connection reset")
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := NewFakeScoreRepository()
			roster := NewFakeRosterRepository()
			if tt.setupRoster != nil {
				tt.setupRoster(roster)
			}
			if tt.setupScores != nil {
				tt.setupScores(scores)
			}

			result, err := testService(scores, roster).RecordScore(context.Background(), tt.entry)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			if tt.wantFailure != "" {
				assert.True(t, result.IsFailure())
				assert.Equal(t, tt.wantFailure, result.Failure.Reason)
				assert.Empty(t, scores.Upserted)
				return
			}

			assert.True(t, result.IsSuccess())
			if tt.wantUpsert {
				assert.Equal(t, []string{"UpsertScore"}, scores.Trace())
				assert.Equal(t, tt.entry, scores.Upserted[0])
			}
		})
	}
}

func TestRemoveScore(t *testing.T) {
	t.Run("missing entry is a failure payload, not an error", func(t *testing.T) {
		scores := NewFakeScoreRepository()
		scores.DeleteScoreFunc = func(ctx context.Context, db bun.IDB, playerID int64, day, hole int) error {
			return scoredb.ErrNotFound
		}

		result, err := testService(scores, NewFakeRosterRepository()).RemoveScore(context.Background(), 1, 1, 1)
		assert.NoError(t, err)
		assert.True(t, result.IsFailure())
		assert.Equal(t, "score entry not found", result.Failure.Reason)
	})

	t.Run("deletes an existing entry", func(t *testing.T) {
		scores := NewFakeScoreRepository()
		result, err := testService(scores, NewFakeRosterRepository()).RemoveScore(context.Background(), 1, 2, 3)
		assert.NoError(t, err)
		assert.True(t, result.IsSuccess())
		assert.Equal(t, []string{"DeleteScore"}, scores.Trace())
	})
}
