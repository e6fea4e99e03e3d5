package service

import (
	"errors"
	"testing"
	"time"

	"institute_backend/internal/config"
	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-not-for-production",
			ExpireTime: time.Hour,
		},
	}
}

func seedStudent(t *testing.T, repo *repository.StudentRepository) *model.Student {
	t.Helper()
	dob := time.Date(2001, 3, 14, 0, 0, 0, 0, time.UTC)
	student := &model.Student{
		EnrollmentNo: "PRG-20240101-0001",
		Name:         "Asha Kumari",
		Phone:        "9800000001",
		DOB:          &dob,
	}
	if err := repo.Create(student); err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return student
}

func TestStudentRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStudentRepository(db)
	svc := NewStudentAuthService(repo, testConfig())
	student := seedStudent(t, repo)

	token, err := svc.Register(StudentRegisterReq{
		EnrollmentNo: student.EnrollmentNo,
		DOB:          "2001-03-14",
		Password:     "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("register returned empty token")
	}

	claims, err := util.ParseStudentJWT(token, "test-secret-not-for-production")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.StudentID != student.ID || claims.EnrollmentNo != student.EnrollmentNo {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	// A student token must not pass the staff parser.
	if _, err := util.ParseJWT(token, "test-secret-not-for-production"); err == nil {
		t.Fatal("student token accepted as staff token")
	}

	if _, err := svc.Login(StudentLoginReq{EnrollmentNo: student.EnrollmentNo, Password: "hunter22"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.Login(StudentLoginReq{EnrollmentNo: student.EnrollmentNo, Password: "wrong"}); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStudentRegisterRejections(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStudentRepository(db)
	svc := NewStudentAuthService(repo, testConfig())
	student := seedStudent(t, repo)

	// Wrong date of birth looks identical to an unknown student.
	if _, err := svc.Register(StudentRegisterReq{
		EnrollmentNo: student.EnrollmentNo,
		DOB:          "1999-01-01",
		Password:     "hunter22",
	}); !errors.Is(err, util.ErrStudentNotFound) {
		t.Fatalf("wrong dob: expected ErrStudentNotFound, got %v", err)
	}

	if _, err := svc.Register(StudentRegisterReq{
		EnrollmentNo: "PRG-NOPE",
		DOB:          "2001-03-14",
		Password:     "hunter22",
	}); !errors.Is(err, util.ErrStudentNotFound) {
		t.Fatalf("unknown enrollment: expected ErrStudentNotFound, got %v", err)
	}

	if _, err := svc.Register(StudentRegisterReq{
		EnrollmentNo: student.EnrollmentNo,
		DOB:          "2001-03-14",
		Password:     "hunter22",
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	if _, err := svc.Register(StudentRegisterReq{
		EnrollmentNo: student.EnrollmentNo,
		DOB:          "2001-03-14",
		Password:     "again",
	}); !errors.Is(err, util.ErrLoginAlreadyEnabled) {
		t.Fatalf("re-register: expected ErrLoginAlreadyEnabled, got %v", err)
	}
}

func TestStudentLoginBeforeRegister(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStudentRepository(db)
	svc := NewStudentAuthService(repo, testConfig())
	student := seedStudent(t, repo)

	if _, err := svc.Login(StudentLoginReq{EnrollmentNo: student.EnrollmentNo, Password: "any"}); !errors.Is(err, util.ErrLoginNotEnabled) {
		t.Fatalf("expected ErrLoginNotEnabled, got %v", err)
	}
}
