package coursedb

import "github.com/uptrace/bun"

// Course is one of the venues the tournament rotates through.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull,unique"`
}

// Hole carries a hole's par and stroke index within a course. Stroke indices
// 1..18 should form a permutation per course; the engine tolerates bad data
// by skipping affected holes rather than enforcing it here.
type Hole struct {
	bun.BaseModel `bun:"table:holes,alias:h"`

	CourseID    int64 `bun:"course_id,pk"`
	HoleNumber  int   `bun:"hole_number,pk"`
	Par         int   `bun:"par,notnull"`
	StrokeIndex int   `bun:"stroke_index,notnull"`
}
