package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"CourseForge/internal/app_errors"
	"CourseForge/internal/models"
	"CourseForge/internal/service/catalog"

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
	courses []models.Course
}

func (f *fakeCourseRepo) CourseBySlug(_ context.Context, slug string) (*models.Course, error) {
	for i := range f.courses {
		if f.courses[i].Slug == slug {
			return &f.courses[i], nil
		}
	}
	return nil, app_errors.ErrCourseNotFound
}

func (f *fakeCourseRepo) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	for i := range f.courses {
		if f.courses[i].ID == id {
			return &f.courses[i], nil
		}
	}
	return nil, app_errors.ErrCourseNotFound
}

func (f *fakeCourseRepo) ListPublicCourses(_ context.Context, limit, offset int) ([]models.Course, error) {
	var public []models.Course
	for _, c := range f.courses {
		if c.Status == models.StatusPublic {
			public = append(public, c)
		}
	}
	if offset >= len(public) {
		return nil, nil
	}
	public = public[offset:]
	if limit < len(public) {
		public = public[:limit]
	}
	return public, nil
}

func (f *fakeCourseRepo) CountPublicCourses(_ context.Context) (int, error) {
	n := 0
	for _, c := range f.courses {
		if c.Status == models.StatusPublic {
			n++
		}
	}
	return n, nil
}

type fakeSearchRepo struct {
	ids []uuid.UUID
}

func (f *fakeSearchRepo) Search(_ context.Context, _ string, size int) ([]uuid.UUID, error) {
	if size < len(f.ids) {
		return f.ids[:size], nil
	}
	return f.ids, nil
}

func (f *fakeSearchRepo) Count(_ context.Context, _ string) (int, error) {
	return len(f.ids), nil
}

func (f *fakeSearchRepo) Index(_ context.Context, course models.Course) error {
	for _, id := range f.ids {
		if id == course.ID {
			return nil
		}
	}
	f.ids = append(f.ids, course.ID)
	return nil
}

func (f *fakeSearchRepo) Delete(_ context.Context, id uuid.UUID) error {
	var kept []uuid.UUID
	for _, existing := range f.ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	f.ids = kept
	return nil
}

type fakeLogoRepo struct{}

func (fakeLogoRepo) GetLogoURL(_ context.Context, objectKey string) (string, error) {
	return "https://cdn.test/" + objectKey, nil
}

type fakeUserRepo struct {
	users    map[uuid.UUID]*models.User
	profiles map[uuid.UUID]*models.Profile
}

func (f *fakeUserRepo) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, app_errors.ErrUserNotFound
}

func (f *fakeUserRepo) ProfileByUserID(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, app_errors.ErrProfileNotFound
}

type fakeEnrollmentRepo struct {
	enrolled map[uuid.UUID]map[uuid.UUID]bool
}

func (f *fakeEnrollmentRepo) Enroll(_ context.Context, courseID, profileID uuid.UUID) error {
	if f.enrolled[courseID][profileID] {
		return app_errors.ErrAlreadyEnrolled
	}
	if f.enrolled[courseID] == nil {
		f.enrolled[courseID] = make(map[uuid.UUID]bool)
	}
	f.enrolled[courseID][profileID] = true
	return nil
}

type catalogFixture struct {
	service *catalog.CatalogService

	author      *models.User
	userID      uuid.UUID
	profile     *models.Profile
	public      models.Course
	hidden      models.Course
	search      *fakeSearchRepo
	enrollments *fakeEnrollmentRepo
}

func newCatalogFixture() *catalogFixture {
	author := &models.User{ID: uuid.New(), Username: "gopher-instructor"}
	userID := uuid.New()
	profile := &models.Profile{ID: uuid.New(), UserID: userID, FullName: "Test Student"}

	public := models.Course{
		ID:            uuid.New(),
		Title:         "Go Basics",
		Slug:          "go-basics",
		Description:   strings.Repeat("a", 250),
		LogoObjectKey: "logos/go-basics.png",
		AuthorID:      author.ID,
		Status:        models.StatusPublic,
	}
	hidden := models.Course{
		ID:       uuid.New(),
		Title:    "Unreleased Course",
		Slug:     "unreleased",
		AuthorID: author.ID,
		Status:   models.StatusHidden,
	}

	search := &fakeSearchRepo{}
	enrollments := &fakeEnrollmentRepo{enrolled: map[uuid.UUID]map[uuid.UUID]bool{}}

	service := catalog.NewCatalogService(
		nopLogger{},
		&fakeCourseRepo{courses: []models.Course{public, hidden}},
		search,
		fakeLogoRepo{},
		&fakeUserRepo{
			users:    map[uuid.UUID]*models.User{author.ID: author},
			profiles: map[uuid.UUID]*models.Profile{userID: profile},
		},
		enrollments,
	)

	return &catalogFixture{
		service:     service,
		author:      author,
		userID:      userID,
		profile:     profile,
		public:      public,
		hidden:      hidden,
		search:      search,
		enrollments: enrollments,
	}
}

func TestCourseBySlug_Preview(t *testing.T) {
	f := newCatalogFixture()

	p, err := f.service.CourseBySlug(context.Background(), f.public.Slug)
	if err != nil {
		t.Fatalf("CourseBySlug: %v", err)
	}
	if p.Title != f.public.Title || p.Slug != f.public.Slug {
		t.Errorf("unexpected preview identity: %+v", p)
	}
	if p.AuthorName != f.author.Username {
		t.Errorf("expected author name %q, got %q", f.author.Username, p.AuthorName)
	}
	if p.LogoURL != "https://cdn.test/logos/go-basics.png" {
		t.Errorf("unexpected logo URL: %q", p.LogoURL)
	}
	if want := strings.Repeat("a", 200) + "…"; p.Description != want {
		t.Errorf("expected description truncated to 200 chars, got %d chars", len(p.Description))
	}
}

func TestCourseBySlug_HiddenCourse(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.service.CourseBySlug(context.Background(), f.hidden.Slug)
	if !errors.Is(err, app_errors.ErrCourseNotFound) {
		t.Fatalf("hidden course must look absent, got %v", err)
	}
}

func TestCoursesPreview_SkipsHidden(t *testing.T) {
	f := newCatalogFixture()

	previews, total, err := f.service.CoursesPreview(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("CoursesPreview: %v", err)
	}
	if total != 1 || len(previews) != 1 {
		t.Fatalf("expected only the public course, got %d previews total=%d", len(previews), total)
	}
	if previews[0].Slug != f.public.Slug {
		t.Errorf("unexpected preview: %+v", previews[0])
	}
}

func TestSearchCoursesPreview_FiltersHidden(t *testing.T) {
	f := newCatalogFixture()
	f.search.ids = []uuid.UUID{f.hidden.ID, f.public.ID}

	previews, _, err := f.service.SearchCoursesPreview(context.Background(), "go", 10, 0)
	if err != nil {
		t.Fatalf("SearchCoursesPreview: %v", err)
	}
	if len(previews) != 1 || previews[0].ID != f.public.ID {
		t.Errorf("expected hidden hits to be dropped, got %+v", previews)
	}
}

func TestSyncSearchIndex(t *testing.T) {
	f := newCatalogFixture()

	if err := f.service.SyncSearchIndex(context.Background()); err != nil {
		t.Fatalf("SyncSearchIndex: %v", err)
	}
	if len(f.search.ids) != 1 || f.search.ids[0] != f.public.ID {
		t.Fatalf("expected only the public course in the index, got %v", f.search.ids)
	}

	previews, total, err := f.service.SearchCoursesPreview(context.Background(), "go", 10, 0)
	if err != nil {
		t.Fatalf("SearchCoursesPreview after sync: %v", err)
	}
	if total != 1 || len(previews) != 1 || previews[0].ID != f.public.ID {
		t.Errorf("expected the synced course to be searchable, got %d previews total=%d", len(previews), total)
	}
}

func TestSyncSearchIndex_Idempotent(t *testing.T) {
	f := newCatalogFixture()

	for i := 0; i < 2; i++ {
		if err := f.service.SyncSearchIndex(context.Background()); err != nil {
			t.Fatalf("sync %d: %v", i+1, err)
		}
	}
	if len(f.search.ids) != 1 {
		t.Errorf("re-syncing must not duplicate documents, got %v", f.search.ids)
	}
}

// Hits whose course disappeared or was unpublished are evicted from the
// index during search, so the hit count converges on the public catalog.
func TestSearchCoursesPreview_EvictsStaleHits(t *testing.T) {
	f := newCatalogFixture()
	deletedID := uuid.New()
	f.search.ids = []uuid.UUID{f.hidden.ID, deletedID, f.public.ID}

	previews, _, err := f.service.SearchCoursesPreview(context.Background(), "go", 10, 0)
	if err != nil {
		t.Fatalf("SearchCoursesPreview: %v", err)
	}
	if len(previews) != 1 || previews[0].ID != f.public.ID {
		t.Fatalf("expected only the public hit, got %+v", previews)
	}
	if len(f.search.ids) != 1 || f.search.ids[0] != f.public.ID {
		t.Errorf("expected stale documents evicted, index holds %v", f.search.ids)
	}

	_, total, err := f.service.SearchCoursesPreview(context.Background(), "go", 10, 0)
	if err != nil {
		t.Fatalf("second SearchCoursesPreview: %v", err)
	}
	if total != 1 {
		t.Errorf("expected total to converge to 1 after eviction, got %d", total)
	}
}

func TestSearchCoursesPreview_OffsetBeyondHits(t *testing.T) {
	f := newCatalogFixture()
	f.search.ids = []uuid.UUID{f.public.ID}

	previews, total, err := f.service.SearchCoursesPreview(context.Background(), "go", 10, 5)
	if err != nil {
		t.Fatalf("SearchCoursesPreview: %v", err)
	}
	if len(previews) != 0 || total != 0 {
		t.Errorf("expected empty page past the hit list, got %d previews total=%d", len(previews), total)
	}
}

func TestEnroll(t *testing.T) {
	f := newCatalogFixture()

	if err := f.service.Enroll(context.Background(), f.public.Slug, f.userID); err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if !f.enrollments.enrolled[f.public.ID][f.profile.ID] {
		t.Error("expected enrollment keyed by profile id")
	}
}

func TestEnroll_Duplicate(t *testing.T) {
	f := newCatalogFixture()

	if err := f.service.Enroll(context.Background(), f.public.Slug, f.userID); err != nil {
		t.Fatalf("first Enroll: %v", err)
	}
	err := f.service.Enroll(context.Background(), f.public.Slug, f.userID)
	if !errors.Is(err, app_errors.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestEnroll_HiddenCourse(t *testing.T) {
	f := newCatalogFixture()

	err := f.service.Enroll(context.Background(), f.hidden.Slug, f.userID)
	if !errors.Is(err, app_errors.ErrCourseNotPublished) {
		t.Fatalf("expected ErrCourseNotPublished, got %v", err)
	}
}
