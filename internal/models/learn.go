package models

import "github.com/google/uuid"

type VideoInfo struct {
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
	FreePreview     bool   `json:"free_preview"`
}

type QuizInfo struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"question_count"`
	PassingScore  int       `json:"passing_score"`
}

type AssignmentInfo struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	MaxScore int       `json:"max_score"`
}

// LearningItem is the projection of a lesson, a quiz-bearing section or an
// assignment-bearing section into one navigable unit of the play sequence.
// Exactly one of Video, Quiz or Assignment is set, matching SectionType
// (both stay nil only when the instructor has not finished authoring the
// quiz/assignment yet).
//
// AddressKey is what URLs and the navigation cursor address the item by:
// the lesson id for lessons, the owning section id for quiz and assignment
// items. Quiz and assignment items also borrow the section id as their ID.
//
// Quiz and assignment items always project IsCompleted=false: attempt and
// submission state lives in its own entities and is not folded into the
// progress counters here.
type LearningItem struct {
	ID           uuid.UUID       `json:"id"`
	AddressKey   uuid.UUID       `json:"address_key"`
	Title        string          `json:"title"`
	SectionID    uuid.UUID       `json:"section_id"`
	SectionTitle string          `json:"section_title"`
	SectionOrder int             `json:"section_order"`
	SectionType  string          `json:"section_type"`
	IsCompleted  bool            `json:"is_completed"`
	Video        *VideoInfo      `json:"video,omitempty"`
	Quiz         *QuizInfo       `json:"quiz,omitempty"`
	Assignment   *AssignmentInfo `json:"assignment,omitempty"`
}

type SectionData struct {
	Section        Section        `json:"section"`
	Items          []LearningItem `json:"items"`
	CompletedCount int            `json:"completed_count"`
	TotalCount     int            `json:"total_count"`
}

// CourseLearnData is the snapshot the learn page renders from: the sidebar
// sections with per-section counters, the flattened play sequence and the
// resolved navigation cursor. It is recomputed in full on every request.
type CourseLearnData struct {
	Course         Course         `json:"course"`
	Sections       []SectionData  `json:"sections"`
	AllItems       []LearningItem `json:"all_items"`
	TotalItems     int            `json:"total_items"`
	CompletedItems int            `json:"completed_items"`
	Current        *LearningItem  `json:"current,omitempty"`
	Previous       *LearningItem  `json:"previous,omitempty"`
	Next           *LearningItem  `json:"next,omitempty"`
}
