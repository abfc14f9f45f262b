package rosterdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// RosterDBImpl implements Repository on top of bun.
type RosterDBImpl struct {
	DB *bun.DB
}

func (r *RosterDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *RosterDBImpl) ActivePlayers(ctx context.Context, db bun.IDB) ([]Player, error) {
	var players []Player
	err := r.idb(db).NewSelect().
		Model(&players).
		Where("active = TRUE").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active players: %w", err)
	}
	return players, nil
}

func (r *RosterDBImpl) GetPlayer(ctx context.Context, db bun.IDB, id int64) (*Player, error) {
	var player Player
	err := r.idb(db).NewSelect().
		Model(&player).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch player %d: %w", id, err)
	}
	return &player, nil
}

func (r *RosterDBImpl) CreatePlayer(ctx context.Context, db bun.IDB, player *Player) error {
	if _, err := r.idb(db).NewInsert().Model(player).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create player %q: %w", player.Name, err)
	}
	return nil
}

func (r *RosterDBImpl) SetPlayerActive(ctx context.Context, db bun.IDB, id int64, active bool) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Player)(nil)).
		Set("active = ?", active).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player %d active flag: %w", id, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RosterDBImpl) AssignToTeam(ctx context.Context, db bun.IDB, playerID int64, teamID *int64) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Player)(nil)).
		Set("team_id = ?", teamID).
		Where("id = ?", playerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to assign player %d to team: %w", playerID, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RosterDBImpl) Teams(ctx context.Context, db bun.IDB) ([]Team, error) {
	var teams []Team
	err := r.idb(db).NewSelect().
		Model(&teams).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	return teams, nil
}

func (r *RosterDBImpl) CreateTeam(ctx context.Context, db bun.IDB, team *Team) error {
	if _, err := r.idb(db).NewInsert().Model(team).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create team %q: %w", team.Name, err)
	}
	return nil
}
