package rosterdb

import "github.com/uptrace/bun"

// Player is a tournament participant. Inactive players are kept for history
// but excluded from every leaderboard.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID       int64  `bun:"id,pk,autoincrement"`
	Name     string `bun:"name,notnull"`
	Handicap int    `bun:"handicap,notnull,default:36"`
	Active   bool   `bun:"active,notnull,default:true"`
	TeamID   *int64 `bun:"team_id"`
}

// Team is a named group of players; membership lives on Player.TeamID.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull,unique"`
}
