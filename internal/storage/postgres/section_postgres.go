package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"CourseForge/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SectionPostgres struct {
	db *pgxpool.Pool
}

func NewSectionPostgres(db *pgxpool.Pool) *SectionPostgres {
	return &SectionPostgres{db: db}
}

func (r *SectionPostgres) SectionsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Section, error) {
	query := `
        SELECT id, course_id, title, description, section_type, section_order, created_at, updated_at
          FROM sections
         WHERE course_id = $1
         ORDER BY section_order
    `
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.CourseID, &s.Title, &s.Description, &s.Type, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}

// LessonsByCourse loads every lesson of the course with its content row in
// one query, ordered by section then lesson position. The learn loader
// groups the result by section instead of issuing a query per section.
func (r *SectionPostgres) LessonsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.LessonDetail, error) {
	query := `
        SELECT l.id, l.course_id, l.section_id, l.title, l.slug, l.lesson_order, l.created_at, l.updated_at,
               lc.video_object_key, lc.duration_seconds, lc.free_preview, lc.updated_at
          FROM lessons l
          JOIN sections s ON s.id = l.section_id
          LEFT JOIN lesson_contents lc ON lc.lesson_id = l.id
         WHERE l.course_id = $1
         ORDER BY s.section_order, l.lesson_order
    `
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var details []models.LessonDetail
	for rows.Next() {
		var d models.LessonDetail
		var videoObjectKey *string
		var durationSeconds *int
		var freePreview *bool
		var contentUpdatedAt *time.Time
		if err := rows.Scan(
			&d.Lesson.ID, &d.Lesson.CourseID, &d.Lesson.SectionID,
			&d.Lesson.Title, &d.Lesson.Slug, &d.Lesson.Order,
			&d.Lesson.CreatedAt, &d.Lesson.UpdatedAt,
			&videoObjectKey, &durationSeconds, &freePreview, &contentUpdatedAt,
		); err != nil {
			return nil, err
		}
		if durationSeconds != nil || videoObjectKey != nil {
			content := models.LessonContent{
				LessonID:       d.Lesson.ID,
				VideoObjectKey: videoObjectKey,
			}
			if durationSeconds != nil {
				content.DurationSeconds = *durationSeconds
			}
			if freePreview != nil {
				content.FreePreview = *freePreview
			}
			if contentUpdatedAt != nil {
				content.UpdatedAt = *contentUpdatedAt
			}
			d.Content = &content
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// QuizBySection returns the section's quiz and its question count, or
// (nil, 0, nil) when the instructor has not authored the quiz yet.
func (r *SectionPostgres) QuizBySection(ctx context.Context, sectionID uuid.UUID) (*models.Quiz, int, error) {
	query := `
        SELECT q.id, q.section_id, q.course_id, q.title, q.passing_score, q.time_limit_minutes,
               q.created_at, q.updated_at,
               (SELECT COUNT(*) FROM quiz_questions qq WHERE qq.quiz_id = q.id)
          FROM quizzes q
         WHERE q.section_id = $1
    `
	var quiz models.Quiz
	var questionCount int
	err := r.db.QueryRow(ctx, query, sectionID).Scan(
		&quiz.ID, &quiz.SectionID, &quiz.CourseID, &quiz.Title,
		&quiz.PassingScore, &quiz.TimeLimitMinutes,
		&quiz.CreatedAt, &quiz.UpdatedAt,
		&questionCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to query quiz: %w", err)
	}
	return &quiz, questionCount, nil
}

// AssignmentBySection returns nil when the section has no assignment row yet.
func (r *SectionPostgres) AssignmentBySection(ctx context.Context, sectionID uuid.UUID) (*models.Assignment, error) {
	query := `
        SELECT id, section_id, course_id, title, description, max_score, due_in_days, created_at, updated_at
          FROM assignments
         WHERE section_id = $1
    `
	var a models.Assignment
	err := r.db.QueryRow(ctx, query, sectionID).Scan(
		&a.ID, &a.SectionID, &a.CourseID, &a.Title, &a.Description,
		&a.MaxScore, &a.DueInDays, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query assignment: %w", err)
	}
	return &a, nil
}
