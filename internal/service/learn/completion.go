package learn

import (
	"context"

	"CourseForge/internal/app_errors"

	"github.com/google/uuid"
)

// MarkLessonComplete records that the user finished a video lesson. The
// write is an idempotent upsert: re-marking a completed lesson succeeds
// without changing anything. Only lesson rows of the addressed course are
// accepted; quiz and assignment sections are completed through their own
// submission paths, never through this one.
func (s *LearnService) MarkLessonComplete(ctx context.Context, courseSlug string, lessonID, userID uuid.UUID) error {
	course, err := s.courseRepo.CourseBySlug(ctx, courseSlug)
	if err != nil {
		return err
	}

	profile, err := s.userRepo.ProfileByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.enrollmentRepo.ActiveEnrollment(ctx, course.ID, profile.ID); err != nil {
		return err
	}

	ok, err := s.completionRepo.LessonInCourse(ctx, lessonID, course.ID)
	if err != nil {
		return err
	}
	if !ok {
		return app_errors.ErrLessonNotFound
	}

	return s.completionRepo.MarkComplete(ctx, profile.ID, lessonID)
}
