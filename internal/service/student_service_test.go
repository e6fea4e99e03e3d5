package service

import (
	"errors"
	"regexp"
	"testing"

	"institute_backend/internal/config"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

func newStudentFixture(t *testing.T) (*StudentService, *repository.StudentRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewStudentRepository(db)

	cfg := testConfig()
	cfg.Storage = config.StorageConfig{Type: "local", LocalPath: t.TempDir()}
	cfg.Media = config.MediaConfig{MaxUploadMB: 25}

	return NewStudentService(repo, NewStorageService(cfg), cfg), repo
}

var enrollmentPattern = regexp.MustCompile(`^PRG-\d{8}-\d{4}$`)

func TestStudentCreateGeneratesEnrollment(t *testing.T) {
	svc, _ := newStudentFixture(t)

	student, err := svc.Create(StudentCreateReq{
		Name:  "Ravi Prasad",
		Phone: "9800000002",
		DOB:   "2002-07-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !enrollmentPattern.MatchString(student.EnrollmentNo) {
		t.Fatalf("generated enrollment %q does not match PRG-YYYYMMDD-NNNN", student.EnrollmentNo)
	}
	if student.Status != "active" {
		t.Fatalf("status should default to active, got %q", student.Status)
	}
	if student.JoinDate == nil {
		t.Fatal("join date should default to today")
	}
}

func TestStudentCreateRejectsDuplicateEnrollment(t *testing.T) {
	svc, _ := newStudentFixture(t)

	req := StudentCreateReq{
		EnrollmentNo: "PRG-20240101-0042",
		Name:         "First",
		Phone:        "9800000003",
	}
	if _, err := svc.Create(req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	req.Name = "Second"
	if _, err := svc.Create(req); !errors.Is(err, util.ErrEnrollmentTaken) {
		t.Fatalf("expected ErrEnrollmentTaken, got %v", err)
	}
}

func TestStudentCreateRejectsBadDate(t *testing.T) {
	svc, _ := newStudentFixture(t)

	if _, err := svc.Create(StudentCreateReq{
		Name:  "Bad Date",
		Phone: "9800000004",
		DOB:   "01/07/2002",
	}); !errors.Is(err, util.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestStudentUpdatePatchesOnlyGivenFields(t *testing.T) {
	svc, _ := newStudentFixture(t)

	student, err := svc.Create(StudentCreateReq{Name: "Original", Phone: "9800000005", Address: "Old Town"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(student.ID, StudentUpdateReq{Name: strPtr("Renamed")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Phone != "9800000005" || updated.Address != "Old Town" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if _, err := svc.Update(9999, StudentUpdateReq{}); !errors.Is(err, util.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestStudentSetPasswordEnablesLogin(t *testing.T) {
	svc, repo := newStudentFixture(t)

	student, err := svc.Create(StudentCreateReq{Name: "Login", Phone: "9800000006"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if student.LoginEnabled {
		t.Fatal("login should start disabled")
	}

	if _, err := svc.SetPassword(student.ID, SetPasswordReq{Password: "secret1"}); err != nil {
		t.Fatalf("set password: %v", err)
	}

	reloaded, err := repo.FindByID(student.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.LoginEnabled {
		t.Fatal("login not enabled after password set")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(reloaded.LoginPasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestStudentDelete(t *testing.T) {
	svc, _ := newStudentFixture(t)

	student, err := svc.Create(StudentCreateReq{Name: "Gone", Phone: "9800000007"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(student.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(student.ID); !errors.Is(err, util.ErrStudentNotFound) {
		t.Fatalf("student still present: %v", err)
	}
}
