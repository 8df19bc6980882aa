package learn_test

import (
	"context"
	"time"

	"CourseForge/internal/app_errors"
	"CourseForge/internal/models"
	"CourseForge/internal/service/learn"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})           {}
func (nopLogger) Info(string, ...interface{})            {}
func (nopLogger) Warn(string, ...interface{})            {}
func (nopLogger) Error(string, ...interface{})           {}
func (nopLogger) ErrorErr(string, error, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{})           {}
func (nopLogger) FatalErr(string, error, ...interface{}) {}

type fakeCourseRepo struct {
	courses map[string]*models.Course
}

func (f *fakeCourseRepo) CourseBySlug(_ context.Context, slug string) (*models.Course, error) {
	if c, ok := f.courses[slug]; ok {
		return c, nil
	}
	return nil, app_errors.ErrCourseNotFound
}

type fakeUserRepo struct {
	profiles map[uuid.UUID]*models.Profile
}

func (f *fakeUserRepo) ProfileByUserID(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, app_errors.ErrProfileNotFound
}

type enrollmentKey struct {
	courseID  uuid.UUID
	profileID uuid.UUID
}

type fakeEnrollmentRepo struct {
	active map[enrollmentKey]bool
}

func (f *fakeEnrollmentRepo) ActiveEnrollment(_ context.Context, courseID, profileID uuid.UUID) (*models.Enrollment, error) {
	if !f.active[enrollmentKey{courseID, profileID}] {
		return nil, app_errors.ErrNotEnrolled
	}
	return &models.Enrollment{
		ID:        uuid.New(),
		CourseID:  courseID,
		ProfileID: profileID,
		Status:    models.EnrollmentStatusActive,
		CreatedAt: time.Now(),
	}, nil
}

type fakeCurriculumRepo struct {
	sections      []models.Section
	lessons       []models.LessonDetail
	quizzes       map[uuid.UUID]*models.Quiz
	questionCount map[uuid.UUID]int
	assignments   map[uuid.UUID]*models.Assignment
}

func (f *fakeCurriculumRepo) SectionsByCourse(_ context.Context, courseID uuid.UUID) ([]models.Section, error) {
	var out []models.Section
	for _, s := range f.sections {
		if s.CourseID == courseID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCurriculumRepo) LessonsByCourse(_ context.Context, courseID uuid.UUID) ([]models.LessonDetail, error) {
	var out []models.LessonDetail
	for _, d := range f.lessons {
		if d.Lesson.CourseID == courseID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeCurriculumRepo) QuizBySection(_ context.Context, sectionID uuid.UUID) (*models.Quiz, int, error) {
	q, ok := f.quizzes[sectionID]
	if !ok {
		return nil, 0, nil
	}
	return q, f.questionCount[sectionID], nil
}

func (f *fakeCurriculumRepo) AssignmentBySection(_ context.Context, sectionID uuid.UUID) (*models.Assignment, error) {
	return f.assignments[sectionID], nil
}

type fakeCompletionRepo struct {
	completed    map[uuid.UUID]map[uuid.UUID]bool
	lessonCourse map[uuid.UUID]uuid.UUID
	markCalls    int
}

func (f *fakeCompletionRepo) CompletedLessonIDs(_ context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for lessonID, done := range f.completed[profileID] {
		if done {
			out = append(out, lessonID)
		}
	}
	return out, nil
}

func (f *fakeCompletionRepo) MarkComplete(_ context.Context, profileID, lessonID uuid.UUID) error {
	f.markCalls++
	if f.completed[profileID] == nil {
		f.completed[profileID] = make(map[uuid.UUID]bool)
	}
	f.completed[profileID][lessonID] = true
	return nil
}

func (f *fakeCompletionRepo) LessonInCourse(_ context.Context, lessonID, courseID uuid.UUID) (bool, error) {
	return f.lessonCourse[lessonID] == courseID, nil
}

type fakeVideoStorage struct {
	err error
}

func (f *fakeVideoStorage) GetVideoURL(_ context.Context, objectKey string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.test/" + objectKey, nil
}

// fixture wires a LearnService over one enrolled user and one course with
// three sections: two video lessons, a quiz and an assignment.
type fixture struct {
	service *learn.LearnService

	course  *models.Course
	userID  uuid.UUID
	profile *models.Profile

	lessonsSection    models.Section
	quizSection       models.Section
	assignmentSection models.Section

	lesson1 models.Lesson
	lesson2 models.Lesson
	quiz    models.Quiz

	curriculum  *fakeCurriculumRepo
	completions *fakeCompletionRepo
	enrollments *fakeEnrollmentRepo
	videos      *fakeVideoStorage
}

func strPtr(s string) *string { return &s }

func newFixture() *fixture {
	courseID := uuid.New()
	course := &models.Course{
		ID:     courseID,
		Title:  "Go Basics",
		Slug:   "go-basics",
		Status: models.StatusPublic,
	}

	userID := uuid.New()
	profile := &models.Profile{ID: uuid.New(), UserID: userID, FullName: "Test Student"}

	lessonsSection := models.Section{ID: uuid.New(), CourseID: courseID, Title: "Getting Started", Type: models.SectionTypeLessons, Order: 1}
	quizSection := models.Section{ID: uuid.New(), CourseID: courseID, Title: "Checkpoint", Type: models.SectionTypeQuiz, Order: 2}
	assignmentSection := models.Section{ID: uuid.New(), CourseID: courseID, Title: "Homework", Type: models.SectionTypeAssignment, Order: 3}

	lesson1 := models.Lesson{ID: uuid.New(), CourseID: courseID, SectionID: lessonsSection.ID, Title: "Installation", Order: 1}
	lesson2 := models.Lesson{ID: uuid.New(), CourseID: courseID, SectionID: lessonsSection.ID, Title: "Hello World", Order: 2}

	quiz := models.Quiz{ID: uuid.New(), SectionID: quizSection.ID, CourseID: courseID, Title: "Basics Quiz", PassingScore: 70}
	assignment := models.Assignment{ID: uuid.New(), SectionID: assignmentSection.ID, CourseID: courseID, Title: "First Program", MaxScore: 100}

	curriculum := &fakeCurriculumRepo{
		sections: []models.Section{lessonsSection, quizSection, assignmentSection},
		lessons: []models.LessonDetail{
			{Lesson: lesson1, Content: &models.LessonContent{
				LessonID:        lesson1.ID,
				VideoObjectKey:  strPtr("videos/installation.mp4"),
				DurationSeconds: 300,
				FreePreview:     true,
			}},
			{Lesson: lesson2, Content: &models.LessonContent{
				LessonID:        lesson2.ID,
				VideoObjectKey:  strPtr("videos/hello-world.mp4"),
				DurationSeconds: 540,
			}},
		},
		quizzes:       map[uuid.UUID]*models.Quiz{quizSection.ID: &quiz},
		questionCount: map[uuid.UUID]int{quizSection.ID: 3},
		assignments:   map[uuid.UUID]*models.Assignment{assignmentSection.ID: &assignment},
	}

	completions := &fakeCompletionRepo{
		completed: map[uuid.UUID]map[uuid.UUID]bool{
			profile.ID: {lesson1.ID: true},
		},
		lessonCourse: map[uuid.UUID]uuid.UUID{
			lesson1.ID: courseID,
			lesson2.ID: courseID,
		},
	}

	enrollments := &fakeEnrollmentRepo{
		active: map[enrollmentKey]bool{
			{courseID, profile.ID}: true,
		},
	}

	videos := &fakeVideoStorage{}

	service := learn.NewLearnService(
		nopLogger{},
		&fakeCourseRepo{courses: map[string]*models.Course{course.Slug: course}},
		&fakeUserRepo{profiles: map[uuid.UUID]*models.Profile{userID: profile}},
		enrollments,
		curriculum,
		completions,
		videos,
	)

	return &fixture{
		service:           service,
		course:            course,
		userID:            userID,
		profile:           profile,
		lessonsSection:    lessonsSection,
		quizSection:       quizSection,
		assignmentSection: assignmentSection,
		lesson1:           lesson1,
		lesson2:           lesson2,
		quiz:              quiz,
		curriculum:        curriculum,
		completions:       completions,
		enrollments:       enrollments,
		videos:            videos,
	}
}
