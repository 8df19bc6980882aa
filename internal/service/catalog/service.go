package catalog

import (
	"context"
	"errors"

	"CourseForge/internal/app_errors"
	"CourseForge/internal/models"
	"CourseForge/pkg/logger"

	"github.com/google/uuid"
)

type courseRepo interface {
	CourseBySlug(ctx context.Context, slug string) (*models.Course, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	ListPublicCourses(ctx context.Context, limit int, offset int) ([]models.Course, error)
	CountPublicCourses(ctx context.Context) (int, error)
}

type searchRepo interface {
	Search(ctx context.Context, query string, size int) ([]uuid.UUID, error)
	Count(ctx context.Context, query string) (int, error)
	Index(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type logoRepo interface {
	GetLogoURL(ctx context.Context, objectKey string) (string, error)
}

type userRepo interface {
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

type enrollmentRepo interface {
	Enroll(ctx context.Context, courseID, profileID uuid.UUID) error
}

type CatalogService struct {
	log            logger.Log
	courseRepo     courseRepo
	searchRepo     searchRepo
	logoRepo       logoRepo
	userRepo       userRepo
	enrollmentRepo enrollmentRepo
}

func NewCatalogService(
	log logger.Log,
	courseRepo courseRepo,
	searchRepo searchRepo,
	logoRepo logoRepo,
	userRepo userRepo,
	enrollmentRepo enrollmentRepo,
) *CatalogService {
	return &CatalogService{
		log:            log,
		courseRepo:     courseRepo,
		searchRepo:     searchRepo,
		logoRepo:       logoRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// SyncSearchIndex pushes every public course into the search index. Run at
// startup so the index reflects the catalog; stale documents for courses
// unpublished since are evicted lazily by SearchCoursesPreview.
func (s *CatalogService) SyncSearchIndex(ctx context.Context) error {
	const batchSize = 100
	for offset := 0; ; offset += batchSize {
		courses, err := s.courseRepo.ListPublicCourses(ctx, batchSize, offset)
		if err != nil {
			return err
		}
		for i := range courses {
			if err := s.searchRepo.Index(ctx, courses[i]); err != nil {
				return err
			}
		}
		if len(courses) < batchSize {
			return nil
		}
	}
}

func (s *CatalogService) preview(ctx context.Context, course *models.Course) models.CoursePreview {
	logoURL := ""
	if course.LogoObjectKey != "" {
		u, err := s.logoRepo.GetLogoURL(ctx, course.LogoObjectKey)
		if err != nil {
			s.log.ErrorErr("preview: failed to get logo URL", err)
		} else {
			logoURL = u
		}
	}

	authorName := ""
	author, err := s.userRepo.UserByID(ctx, course.AuthorID)
	if err != nil {
		s.log.ErrorErr("preview: failed to get author by id", err)
	} else {
		authorName = author.Username
	}

	desc := course.Description
	if len(desc) > 200 {
		desc = desc[:200] + "…"
	}

	return models.CoursePreview{
		ID:          course.ID,
		Title:       course.Title,
		Slug:        course.Slug,
		Description: desc,
		AuthorName:  authorName,
		LogoURL:     logoURL,
	}
}

func (s *CatalogService) CourseBySlug(ctx context.Context, slug string) (*models.CoursePreview, error) {
	course, err := s.courseRepo.CourseBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if course.Status != models.StatusPublic {
		return nil, app_errors.ErrCourseNotFound
	}
	p := s.preview(ctx, course)
	return &p, nil
}

func (s *CatalogService) CoursesPreview(ctx context.Context, count int, offset int) ([]models.CoursePreview, int, error) {
	courses, err := s.courseRepo.ListPublicCourses(ctx, count, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.courseRepo.CountPublicCourses(ctx)
	if err != nil {
		return nil, 0, err
	}

	previews := make([]models.CoursePreview, 0, len(courses))
	for i := range courses {
		previews = append(previews, s.preview(ctx, &courses[i]))
	}
	return previews, total, nil
}

func (s *CatalogService) SearchCoursesPreview(ctx context.Context, query string, count int, offset int) ([]models.CoursePreview, int, error) {
	ids, err := s.searchRepo.Search(ctx, query, count+offset)
	if err != nil {
		return nil, 0, err
	}

	if len(ids) > offset {
		ids = ids[offset:]
	} else {
		ids = nil
	}
	if len(ids) > count {
		ids = ids[:count]
	}

	if len(ids) == 0 {
		return []models.CoursePreview{}, 0, nil
	}

	// The total is the index hit count. Hits whose course is gone or no
	// longer public are evicted below, so the count converges on the
	// public catalog; until then it can briefly overcount.
	total, err := s.searchRepo.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	previews := make([]models.CoursePreview, 0, len(ids))
	for _, id := range ids {
		course, err := s.courseRepo.CourseByID(ctx, id)
		if err != nil {
			if errors.Is(err, app_errors.ErrCourseNotFound) {
				s.evictFromIndex(ctx, id)
				continue
			}
			s.log.ErrorErr("search preview: failed to load course by id", err)
			continue
		}
		if course.Status != models.StatusPublic {
			s.evictFromIndex(ctx, id)
			continue
		}
		previews = append(previews, s.preview(ctx, course))
	}

	return previews, total, nil
}

func (s *CatalogService) evictFromIndex(ctx context.Context, id uuid.UUID) {
	if err := s.searchRepo.Delete(ctx, id); err != nil {
		s.log.ErrorErr("search preview: failed to evict stale document", err, "course_id", id)
	}
}

// Enroll creates an active enrollment for the user's profile. Only
// published courses are enrollable; a duplicate enrollment surfaces as
// ErrAlreadyEnrolled.
func (s *CatalogService) Enroll(ctx context.Context, courseSlug string, userID uuid.UUID) error {
	course, err := s.courseRepo.CourseBySlug(ctx, courseSlug)
	if err != nil {
		return err
	}
	if course.Status != models.StatusPublic {
		return app_errors.ErrCourseNotPublished
	}

	profile, err := s.userRepo.ProfileByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.enrollmentRepo.Enroll(ctx, course.ID, profile.ID)
}
