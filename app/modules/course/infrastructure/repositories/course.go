package coursedb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CourseDBImpl implements Repository on top of bun.
type CourseDBImpl struct {
	DB *bun.DB
}

func (r *CourseDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *CourseDBImpl) Courses(ctx context.Context, db bun.IDB) ([]Course, error) {
	var courses []Course
	err := r.idb(db).NewSelect().
		Model(&courses).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	return courses, nil
}

func (r *CourseDBImpl) CreateCourse(ctx context.Context, db bun.IDB, course *Course) error {
	if _, err := r.idb(db).NewInsert().Model(course).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create course %q: %w", course.Name, err)
	}
	return nil
}

func (r *CourseDBImpl) Holes(ctx context.Context, db bun.IDB) ([]Hole, error) {
	var holes []Hole
	err := r.idb(db).NewSelect().
		Model(&holes).
		Order("course_id ASC", "hole_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holes: %w", err)
	}
	return holes, nil
}

func (r *CourseDBImpl) UpsertHole(ctx context.Context, db bun.IDB, hole *Hole) error {
	_, err := r.idb(db).NewInsert().
		Model(hole).
		On("CONFLICT (course_id, hole_number) DO UPDATE").
		Set("par = EXCLUDED.par, stroke_index = EXCLUDED.stroke_index").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert hole %d on course %d: %w", hole.HoleNumber, hole.CourseID, err)
	}
	return nil
}
