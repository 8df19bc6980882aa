package postgres

import (
	"context"
	"fmt"
	"time"

	"CourseForge/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompletionPostgres struct {
	db *pgxpool.Pool
}

func NewCompletionPostgres(db *pgxpool.Pool) *CompletionPostgres {
	return &CompletionPostgres{db: db}
}

func (r *CompletionPostgres) CompletedLessonIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	query := `
        SELECT lesson_id
          FROM lesson_completions
         WHERE profile_id = $1 AND completed = TRUE
    `
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson completions: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// MarkComplete is an idempotent upsert keyed by (profile_id, lesson_id).
// Re-marking an already completed lesson keeps the original completed_at.
func (r *CompletionPostgres) MarkComplete(ctx context.Context, profileID, lessonID uuid.UUID) error {
	query := `
        INSERT INTO lesson_completions (profile_id, lesson_id, completed, completed_at)
        VALUES ($1, $2, TRUE, $3)
        ON CONFLICT (profile_id, lesson_id)
        DO UPDATE SET completed = TRUE
    `
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, query, profileID, lessonID, now)
	if err != nil {
		return fmt.Errorf("failed to mark lesson complete: %w", err)
	}
	return nil
}

// LessonInCourse reports whether the lesson belongs to a lessons-type
// section of the given course. Cross-course lesson ids resolve to false.
func (r *CompletionPostgres) LessonInCourse(ctx context.Context, lessonID, courseID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
              FROM lessons l
              JOIN sections s ON s.id = l.section_id
             WHERE l.id = $1 AND s.course_id = $2 AND s.section_type = $3
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, lessonID, courseID, models.SectionTypeLessons).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson course: %w", err)
	}
	return exists, nil
}
