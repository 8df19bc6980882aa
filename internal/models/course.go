package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusHidden = "hidden"
	StatusPublic = "public"
)

type Course struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	LogoObjectKey string    `json:"logo_object_key"`
	AuthorID      uuid.UUID `json:"author_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CoursePreview struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	AuthorName  string    `json:"author_name"`
	LogoURL     string    `json:"logo_url"`
}
