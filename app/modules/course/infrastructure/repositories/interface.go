package coursedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository is the storage contract for courses and their holes.
type Repository interface {
	Courses(ctx context.Context, db bun.IDB) ([]Course, error)
	CreateCourse(ctx context.Context, db bun.IDB, course *Course) error
	Holes(ctx context.Context, db bun.IDB) ([]Hole, error)
	UpsertHole(ctx context.Context, db bun.IDB, hole *Hole) error
}
