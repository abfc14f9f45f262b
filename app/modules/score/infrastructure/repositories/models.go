package scoredb

import "github.com/uptrace/bun"

// ScoreEntry is one player's gross score on one hole on one day. A missing
// row means the hole has not been played yet; it is never stored as zero.
type ScoreEntry struct {
	bun.BaseModel `bun:"table:scores,alias:s"`

	PlayerID   int64 `bun:"player_id,pk"`
	DayNumber  int   `bun:"day_number,pk"`
	HoleNumber int   `bun:"hole_number,pk"`
	CourseID   int64 `bun:"course_id,notnull"`
	Gross      int   `bun:"gross,notnull"`
}
