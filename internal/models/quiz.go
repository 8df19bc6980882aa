package models

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID               uuid.UUID `json:"id"`
	SectionID        uuid.UUID `json:"section_id"`
	CourseID         uuid.UUID `json:"course_id"`
	Title            string    `json:"title"`
	PassingScore     int       `json:"passing_score"`
	TimeLimitMinutes *int      `json:"time_limit_minutes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type QuizQuestion struct {
	ID            uuid.UUID `json:"id"`
	QuizID        uuid.UUID `json:"quiz_id"`
	Text          string    `json:"text"`
	Type          string    `json:"type"`
	OptionsJSON   *string   `json:"options_json,omitempty"`
	CorrectAnswer *string   `json:"correct_answer,omitempty"`
	Points        int       `json:"points"`
	Order         int       `json:"order"`
}
