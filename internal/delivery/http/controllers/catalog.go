package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"CourseForge/internal/app_errors"
	"CourseForge/internal/delivery/http/controllers/middleware"
	"CourseForge/internal/models"
	"CourseForge/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogService interface {
	CourseBySlug(ctx context.Context, slug string) (*models.CoursePreview, error)
	CoursesPreview(ctx context.Context, count int, offset int) ([]models.CoursePreview, int, error)
	SearchCoursesPreview(ctx context.Context, query string, count int, offset int) ([]models.CoursePreview, int, error)
	Enroll(ctx context.Context, courseSlug string, userID uuid.UUID) error
}

type CatalogHandler struct {
	log     logger.Log
	service CatalogService
}

func NewCatalogHandler(log logger.Log, s CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:     log,
		service: s,
	}
}

func (h *CatalogHandler) ListCoursePreview(c *gin.Context) {
	ctx := c.Request.Context()
	limit := 10
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	offset := 0
	if s := c.Query("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		offset = v
	}

	var (
		previews []models.CoursePreview
		total    int
		err      error
	)
	if q := c.Query("query"); q != "" {
		previews, total, err = h.service.SearchCoursesPreview(ctx, q, limit, offset)
	} else {
		previews, total, err = h.service.CoursesPreview(ctx, limit, offset)
	}
	if err != nil {
		h.log.ErrorErr("ListCoursePreview failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"courses": previews,
	})
}

func (h *CatalogHandler) CourseBySlug(c *gin.Context) {
	courseSlug := c.Param("course_slug")
	if courseSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_slug"})
		return
	}

	preview, err := h.service.CourseBySlug(c.Request.Context(), courseSlug)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.log.ErrorErr("CourseBySlug failed", err, "course_slug", courseSlug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch course"})
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *CatalogHandler) Enroll(c *gin.Context) {
	courseSlug := c.Param("course_slug")
	if courseSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_slug"})
		return
	}

	id, exists := c.Get(middleware.ClientIDCtx)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	userID := id.(uuid.UUID)

	err := h.service.Enroll(c.Request.Context(), courseSlug, userID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"enrolled": true})
	case errors.Is(err, app_errors.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrCourseNotFound), errors.Is(err, app_errors.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, app_errors.ErrCourseNotPublished):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.log.ErrorErr("Enroll failed", err, "course_slug", courseSlug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not enroll"})
	}
}
