package service

import (
	"testing"

	"institute_backend/internal/repository"
)

func newCourseFixture(t *testing.T) *CourseService {
	t.Helper()
	return NewCourseService(repository.NewCourseRepository(newTestDB(t)))
}

func TestCourseCreatedInactiveHiddenFromPublic(t *testing.T) {
	svc := newCourseFixture(t)

	active, err := svc.Create(CourseCreateReq{Title: "Tally Prime"})
	if err != nil {
		t.Fatalf("create active: %v", err)
	}
	if !active.IsActive {
		t.Fatal("course should default to active")
	}

	inactive, err := svc.Create(CourseCreateReq{Title: "Old Batch", IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("create inactive: %v", err)
	}

	reloaded, err := svc.Get(inactive.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.IsActive {
		t.Fatal("course created inactive was stored as active")
	}

	public, err := svc.ListPublic()
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 1 || public[0].ID != active.ID {
		t.Fatalf("public list should hold only the active course: %+v", public)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("staff list should hold both courses, got %d", len(all))
	}
}
