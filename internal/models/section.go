package models

import (
	"time"

	"github.com/google/uuid"
)

// Section kinds. The kind decides which child a section owns: a lessons
// section owns ordered lessons, a quiz or assignment section owns at most
// one quiz or assignment row.
const (
	SectionTypeLessons    = "lessons"
	SectionTypeQuiz       = "quiz"
	SectionTypeAssignment = "assignment"
)

type Section struct {
	ID          uuid.UUID `json:"id"`
	CourseID    uuid.UUID `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
