package postgres

import (
	"context"
	"errors"
	"fmt"

	"CourseForge/internal/app_errors"
	"CourseForge/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CoursePostgres struct {
	db *pgxpool.Pool
}

func NewCoursePostgres(db *pgxpool.Pool) *CoursePostgres {
	return &CoursePostgres{db: db}
}

const courseColumns = `
    id, title, slug, description, logo_object_key,
    author_id, status, created_at, updated_at
`

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Slug,
		&course.Description,
		&course.LogoObjectKey,
		&course.AuthorID,
		&course.Status,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (r *CoursePostgres) CourseBySlug(ctx context.Context, slug string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE slug = $1`
	return scanCourse(r.db.QueryRow(ctx, query, slug))
}

func (r *CoursePostgres) CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	return scanCourse(r.db.QueryRow(ctx, query, id))
}

func (r *CoursePostgres) ListPublicCourses(ctx context.Context, limit int, offset int) ([]models.Course, error) {
	query := `
        SELECT ` + courseColumns + `
          FROM courses
         WHERE status = $1
         ORDER BY created_at DESC
         LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, models.StatusPublic, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query public courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Slug, &c.Description, &c.LogoObjectKey,
			&c.AuthorID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CoursePostgres) CountPublicCourses(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE status = $1`, models.StatusPublic).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count public courses: %w", err)
	}
	return total, nil
}
