package learn

import (
	"context"

	"CourseForge/internal/models"
	"CourseForge/pkg/logger"

	"github.com/google/uuid"
)

type courseRepo interface {
	CourseBySlug(ctx context.Context, slug string) (*models.Course, error)
}

type userRepo interface {
	ProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

type enrollmentRepo interface {
	ActiveEnrollment(ctx context.Context, courseID, profileID uuid.UUID) (*models.Enrollment, error)
}

type curriculumRepo interface {
	SectionsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Section, error)
	LessonsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.LessonDetail, error)
	QuizBySection(ctx context.Context, sectionID uuid.UUID) (*models.Quiz, int, error)
	AssignmentBySection(ctx context.Context, sectionID uuid.UUID) (*models.Assignment, error)
}

type completionRepo interface {
	CompletedLessonIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error)
	MarkComplete(ctx context.Context, profileID, lessonID uuid.UUID) error
	LessonInCourse(ctx context.Context, lessonID, courseID uuid.UUID) (bool, error)
}

type videoStorage interface {
	GetVideoURL(ctx context.Context, objectKey string) (string, error)
}

type LearnService struct {
	log            logger.Log
	courseRepo     courseRepo
	userRepo       userRepo
	enrollmentRepo enrollmentRepo
	curriculumRepo curriculumRepo
	completionRepo completionRepo
	videoStorage   videoStorage
}

func NewLearnService(
	log logger.Log,
	courseRepo courseRepo,
	userRepo userRepo,
	enrollmentRepo enrollmentRepo,
	curriculumRepo curriculumRepo,
	completionRepo completionRepo,
	videoStorage videoStorage,
) *LearnService {
	return &LearnService{
		log:            log,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		curriculumRepo: curriculumRepo,
		completionRepo: completionRepo,
		videoStorage:   videoStorage,
	}
}
