package controllers

import (
	"context"
	"errors"
	"net/http"

	"CourseForge/internal/app_errors"
	"CourseForge/internal/delivery/http/controllers/middleware"
	"CourseForge/internal/models"
	"CourseForge/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LearnService interface {
	LoadLearnData(ctx context.Context, courseSlug string, userID, currentLessonID, currentSectionID uuid.UUID) (*models.CourseLearnData, error)
	MarkLessonComplete(ctx context.Context, courseSlug string, lessonID, userID uuid.UUID) error
}

type LearnHandler struct {
	log     logger.Log
	service LearnService
}

func NewLearnHandler(log logger.Log, s LearnService) *LearnHandler {
	return &LearnHandler{
		log:     log,
		service: s,
	}
}

// Every not-found flavor (missing course, missing profile, no enrollment,
// locator matching nothing) answers with the same body, so a non-enrolled
// caller cannot probe whether a course exists.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func isNotFound(err error) bool {
	return errors.Is(err, app_errors.ErrCourseNotFound) ||
		errors.Is(err, app_errors.ErrProfileNotFound) ||
		errors.Is(err, app_errors.ErrUserNotFound) ||
		errors.Is(err, app_errors.ErrNotEnrolled) ||
		errors.Is(err, app_errors.ErrLessonNotFound)
}

func (h *LearnHandler) GetLearnData(c *gin.Context) {
	courseSlug := c.Param("course_slug")
	if courseSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_slug"})
		return
	}

	lessonID := uuid.Nil
	if s := c.Query("lesson_id"); s != "" {
		v, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson_id"})
			return
		}
		lessonID = v
	}

	sectionID := uuid.Nil
	if s := c.Query("section_id"); s != "" {
		v, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid section_id"})
			return
		}
		sectionID = v
	}

	id, exists := c.Get(middleware.ClientIDCtx)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	userID := id.(uuid.UUID)

	data, err := h.service.LoadLearnData(c.Request.Context(), courseSlug, userID, lessonID, sectionID)
	if err != nil {
		if isNotFound(err) {
			notFound(c)
			return
		}
		h.log.ErrorErr("GetLearnData failed", err, "course_slug", courseSlug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load learn data"})
		return
	}

	// A locator was supplied but nothing in the sequence matched it.
	if (lessonID != uuid.Nil || sectionID != uuid.Nil) && data.Current == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *LearnHandler) MarkLessonComplete(c *gin.Context) {
	courseSlug := c.Param("course_slug")
	if courseSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_slug"})
		return
	}

	lessonID, err := uuid.Parse(c.Param("lesson_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson_id"})
		return
	}

	id, exists := c.Get(middleware.ClientIDCtx)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	userID := id.(uuid.UUID)

	if err := h.service.MarkLessonComplete(c.Request.Context(), courseSlug, lessonID, userID); err != nil {
		if isNotFound(err) {
			notFound(c)
			return
		}
		h.log.ErrorErr("MarkLessonComplete failed", err, "course_slug", courseSlug, "lesson_id", lessonID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not mark lesson complete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": true})
}
