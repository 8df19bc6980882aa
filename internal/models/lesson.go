package models

import (
	"time"

	"github.com/google/uuid"
)

type Lesson struct {
	ID        uuid.UUID `json:"id"`
	CourseID  uuid.UUID `json:"course_id"`
	SectionID uuid.UUID `json:"section_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LessonContent struct {
	LessonID        uuid.UUID `json:"lesson_id"`
	VideoObjectKey  *string   `json:"video_object_key,omitempty"`
	DurationSeconds int       `json:"duration_seconds"`
	FreePreview     bool      `json:"free_preview"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LessonDetail struct {
	Lesson  Lesson         `json:"lesson"`
	Content *LessonContent `json:"content,omitempty"`
}

type LessonCompletion struct {
	ProfileID   uuid.UUID `json:"profile_id"`
	LessonID    uuid.UUID `json:"lesson_id"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completed_at"`
}
