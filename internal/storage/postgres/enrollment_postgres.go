package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"CourseForge/internal/app_errors"
	"CourseForge/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentPostgres struct {
	db *pgxpool.Pool
}

func NewEnrollmentPostgres(db *pgxpool.Pool) *EnrollmentPostgres {
	return &EnrollmentPostgres{db: db}
}

func (r *EnrollmentPostgres) Enroll(ctx context.Context, courseID, profileID uuid.UUID) error {
	now := time.Now().UTC()
	query := `
        INSERT INTO enrollments (id, course_id, profile_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, uuid.New(), courseID, profileID, models.EnrollmentStatusActive, now)
	if err != nil {
		if pgErr := UnwrapPgError(err); pgErr != nil && pgErr.Code == uniqueViolationCode {
			return app_errors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("failed to enroll: %w", err)
	}
	return nil
}

func (r *EnrollmentPostgres) ActiveEnrollment(ctx context.Context, courseID, profileID uuid.UUID) (*models.Enrollment, error) {
	query := `
        SELECT id, course_id, profile_id, status, created_at
          FROM enrollments
         WHERE course_id = $1 AND profile_id = $2 AND status = $3
    `
	var e models.Enrollment
	err := r.db.QueryRow(ctx, query, courseID, profileID, models.EnrollmentStatusActive).Scan(
		&e.ID, &e.CourseID, &e.ProfileID, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrNotEnrolled
		}
		return nil, fmt.Errorf("failed to query enrollment: %w", err)
	}
	return &e, nil
}
