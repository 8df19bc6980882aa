package models

import (
	"time"

	"github.com/google/uuid"
)

const EnrollmentStatusActive = "active"

type Enrollment struct {
	ID        uuid.UUID `json:"id"`
	CourseID  uuid.UUID `json:"course_id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
