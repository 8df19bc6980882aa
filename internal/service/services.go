package service

import (
	"CourseForge/internal/service/auth"
	"CourseForge/internal/service/catalog"
	"CourseForge/internal/service/learn"
)

type Collection struct {
	*auth.AuthService
	*catalog.CatalogService
	*learn.LearnService
}
