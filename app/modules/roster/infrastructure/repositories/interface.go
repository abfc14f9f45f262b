package rosterdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository is the storage contract for players and teams. The db argument
// lets callers thread a transaction; nil uses the repository's own handle.
type Repository interface {
	ActivePlayers(ctx context.Context, db bun.IDB) ([]Player, error)
	GetPlayer(ctx context.Context, db bun.IDB, id int64) (*Player, error)
	CreatePlayer(ctx context.Context, db bun.IDB, player *Player) error
	SetPlayerActive(ctx context.Context, db bun.IDB, id int64, active bool) error
	AssignToTeam(ctx context.Context, db bun.IDB, playerID int64, teamID *int64) error
	Teams(ctx context.Context, db bun.IDB) ([]Team, error)
	CreateTeam(ctx context.Context, db bun.IDB, team *Team) error
}
