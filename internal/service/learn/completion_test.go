package learn_test

import (
	"context"
	"errors"
	"testing"

	"CourseForge/internal/app_errors"

	"github.com/google/uuid"
)

func TestMarkLessonComplete(t *testing.T) {
	f := newFixture()

	err := f.service.MarkLessonComplete(context.Background(), f.course.Slug, f.lesson2.ID, f.userID)
	if err != nil {
		t.Fatalf("MarkLessonComplete: %v", err)
	}
	if !f.completions.completed[f.profile.ID][f.lesson2.ID] {
		t.Error("expected lesson 2 to be recorded as completed")
	}

	data, err := f.service.LoadLearnData(context.Background(), f.course.Slug, f.userID, uuid.Nil, uuid.Nil)
	if err != nil {
		t.Fatalf("LoadLearnData: %v", err)
	}
	if data.CompletedItems != 2 {
		t.Errorf("expected 2 completed items after marking, got %d", data.CompletedItems)
	}
}

func TestMarkLessonComplete_Idempotent(t *testing.T) {
	f := newFixture()

	for i := 0; i < 2; i++ {
		if err := f.service.MarkLessonComplete(context.Background(), f.course.Slug, f.lesson1.ID, f.userID); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
	if !f.completions.completed[f.profile.ID][f.lesson1.ID] {
		t.Error("expected lesson 1 to stay completed")
	}

	data, err := f.service.LoadLearnData(context.Background(), f.course.Slug, f.userID, uuid.Nil, uuid.Nil)
	if err != nil {
		t.Fatalf("LoadLearnData: %v", err)
	}
	if data.CompletedItems != 1 {
		t.Errorf("re-marking must not inflate counters, got %d completed", data.CompletedItems)
	}
}

func TestMarkLessonComplete_LessonFromAnotherCourse(t *testing.T) {
	f := newFixture()
	foreignLesson := uuid.New()
	f.completions.lessonCourse[foreignLesson] = uuid.New()

	err := f.service.MarkLessonComplete(context.Background(), f.course.Slug, foreignLesson, f.userID)
	if !errors.Is(err, app_errors.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
	if f.completions.markCalls != 0 {
		t.Error("rejected lesson must not reach the write path")
	}
}

// Quiz and assignment sections are addressed by section id, which is never
// a lesson id, so completing them through this path must fail.
func TestMarkLessonComplete_QuizSectionID(t *testing.T) {
	f := newFixture()

	err := f.service.MarkLessonComplete(context.Background(), f.course.Slug, f.quizSection.ID, f.userID)
	if !errors.Is(err, app_errors.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestMarkLessonComplete_UnknownLesson(t *testing.T) {
	f := newFixture()

	err := f.service.MarkLessonComplete(context.Background(), f.course.Slug, uuid.New(), f.userID)
	if !errors.Is(err, app_errors.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestMarkLessonComplete_NotEnrolled(t *testing.T) {
	f := newFixture()
	delete(f.enrollments.active, enrollmentKey{f.course.ID, f.profile.ID})

	err := f.service.MarkLessonComplete(context.Background(), f.course.Slug, f.lesson1.ID, f.userID)
	if !errors.Is(err, app_errors.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
	if f.completions.markCalls != 0 {
		t.Error("unenrolled user must not reach the write path")
	}
}

func TestMarkLessonComplete_UnknownCourse(t *testing.T) {
	f := newFixture()

	err := f.service.MarkLessonComplete(context.Background(), "no-such-course", f.lesson1.ID, f.userID)
	if !errors.Is(err, app_errors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
