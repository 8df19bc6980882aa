package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StudentRole    = "student"
	InstructorRole = "instructor"
	AdminRole      = "admin"
)

// User is the platform account used for authentication.
type User struct {
	ID       uuid.UUID
	Username string
	Password string
	Email    string
	Roles    []string
}

// Profile is the app-level student profile. Enrollments and lesson
// completions are keyed by profile id, not by the platform user id.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}
