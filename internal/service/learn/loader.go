package learn

import (
	"context"

	"CourseForge/internal/models"

	"github.com/google/uuid"
)

// LoadLearnData builds the learn-page snapshot for one enrolled user:
// the sections with their items and counters, the flattened play sequence
// and the navigation cursor resolved against currentLessonID or
// currentSectionID (uuid.Nil means absent; lesson id wins when both are
// set).
//
// Course absent, profile absent and missing enrollment all fail the whole
// call; no partial data is returned to a user who cannot see the course.
func (s *LearnService) LoadLearnData(
	ctx context.Context,
	courseSlug string,
	userID uuid.UUID,
	currentLessonID uuid.UUID,
	currentSectionID uuid.UUID,
) (*models.CourseLearnData, error) {
	course, err := s.courseRepo.CourseBySlug(ctx, courseSlug)
	if err != nil {
		return nil, err
	}

	profile, err := s.userRepo.ProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.enrollmentRepo.ActiveEnrollment(ctx, course.ID, profile.ID); err != nil {
		return nil, err
	}

	completedIDs, err := s.completionRepo.CompletedLessonIDs(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	completedSet := make(map[uuid.UUID]struct{}, len(completedIDs))
	for _, id := range completedIDs {
		completedSet[id] = struct{}{}
	}

	sections, err := s.curriculumRepo.SectionsByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	lessons, err := s.curriculumRepo.LessonsByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	lessonsBySection := make(map[uuid.UUID][]models.LessonDetail)
	for _, d := range lessons {
		lessonsBySection[d.Lesson.SectionID] = append(lessonsBySection[d.Lesson.SectionID], d)
	}

	data := &models.CourseLearnData{
		Course:   *course,
		Sections: make([]models.SectionData, 0, len(sections)),
	}

	for _, section := range sections {
		var items []models.LearningItem
		switch section.Type {
		case models.SectionTypeLessons:
			for _, d := range lessonsBySection[section.ID] {
				_, done := completedSet[d.Lesson.ID]
				items = append(items, s.lessonItem(ctx, section, d, done))
			}
		case models.SectionTypeQuiz:
			quiz, questionCount, err := s.curriculumRepo.QuizBySection(ctx, section.ID)
			if err != nil {
				return nil, err
			}
			items = append(items, quizItem(section, quiz, questionCount))
		case models.SectionTypeAssignment:
			assignment, err := s.curriculumRepo.AssignmentBySection(ctx, section.ID)
			if err != nil {
				return nil, err
			}
			items = append(items, assignmentItem(section, assignment))
		}

		sd := models.SectionData{
			Section:    section,
			Items:      items,
			TotalCount: len(items),
		}
		for _, item := range items {
			if item.IsCompleted {
				sd.CompletedCount++
			}
		}

		data.Sections = append(data.Sections, sd)
		data.AllItems = append(data.AllItems, items...)
		data.TotalItems += sd.TotalCount
		data.CompletedItems += sd.CompletedCount
	}

	locator := currentLessonID
	if locator == uuid.Nil {
		locator = currentSectionID
	}
	data.Current, data.Previous, data.Next = Resolve(data.AllItems, locator)

	return data, nil
}

func (s *LearnService) lessonItem(ctx context.Context, section models.Section, d models.LessonDetail, completed bool) models.LearningItem {
	item := models.LearningItem{
		ID:           d.Lesson.ID,
		AddressKey:   d.Lesson.ID,
		Title:        d.Lesson.Title,
		SectionID:    section.ID,
		SectionTitle: section.Title,
		SectionOrder: section.Order,
		SectionType:  section.Type,
		IsCompleted:  completed,
		Video:        &models.VideoInfo{},
	}
	if d.Content != nil {
		item.Video.DurationSeconds = d.Content.DurationSeconds
		item.Video.FreePreview = d.Content.FreePreview
		if d.Content.VideoObjectKey != nil {
			url, err := s.videoStorage.GetVideoURL(ctx, *d.Content.VideoObjectKey)
			if err != nil {
				s.log.ErrorErr("failed to presign video URL", err, "lesson_id", d.Lesson.ID)
			} else {
				item.Video.URL = url
			}
		}
	}
	return item
}

// Quiz and assignment items borrow the owning section's id: that is how
// URLs address them and how the navigation cursor finds them. A nil quiz
// or assignment (section authored, content not yet) still yields an item
// so the sequence and counters stay coherent.
func quizItem(section models.Section, quiz *models.Quiz, questionCount int) models.LearningItem {
	item := models.LearningItem{
		ID:           section.ID,
		AddressKey:   section.ID,
		Title:        section.Title,
		SectionID:    section.ID,
		SectionTitle: section.Title,
		SectionOrder: section.Order,
		SectionType:  section.Type,
	}
	if quiz != nil {
		item.Title = quiz.Title
		item.Quiz = &models.QuizInfo{
			ID:            quiz.ID,
			Title:         quiz.Title,
			QuestionCount: questionCount,
			PassingScore:  quiz.PassingScore,
		}
	}
	return item
}

func assignmentItem(section models.Section, assignment *models.Assignment) models.LearningItem {
	item := models.LearningItem{
		ID:           section.ID,
		AddressKey:   section.ID,
		Title:        section.Title,
		SectionID:    section.ID,
		SectionTitle: section.Title,
		SectionOrder: section.Order,
		SectionType:  section.Type,
	}
	if assignment != nil {
		item.Title = assignment.Title
		item.Assignment = &models.AssignmentInfo{
			ID:       assignment.ID,
			Title:    assignment.Title,
			MaxScore: assignment.MaxScore,
		}
	}
	return item
}
