package service

import (
	"errors"
	"testing"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"
)

func newCertificateFixture(t *testing.T) (*CertificateService, *repository.StudentRepository, *repository.CourseRepository) {
	t.Helper()
	db := newTestDB(t)
	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	svc := NewCertificateService(repository.NewCertificateRepository(db), studentRepo, courseRepo)
	return svc, studentRepo, courseRepo
}

func TestCertificateVerifyByCode(t *testing.T) {
	svc, studentRepo, courseRepo := newCertificateFixture(t)

	student := seedStudent(t, studentRepo)
	course := &model.Course{Title: "Diploma in Computer Applications"}
	if err := courseRepo.Create(course); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	cert, err := svc.Create(CertificateCreateReq{
		StudentID:       student.ID,
		CourseID:        course.ID,
		CertificateCode: "PRG-CERT-001",
		Grade:           "A",
		Percentage:      floatPtr(87.5),
	})
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}
	if cert.Status != "valid" {
		t.Fatalf("status should default to valid, got %q", cert.Status)
	}

	result, err := svc.VerifyByCode("PRG-CERT-001")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if result.StudentName != student.Name || result.CourseName != course.Title {
		t.Fatalf("joined view incomplete: %+v", result)
	}
	if result.EnrollmentNo != student.EnrollmentNo {
		t.Fatalf("enrollment missing: %+v", result)
	}

	if _, err := svc.VerifyByCode("PRG-CERT-404"); !errors.Is(err, util.ErrCertificateNotFound) {
		t.Fatalf("expected ErrCertificateNotFound, got %v", err)
	}
}

func TestCertificateVerifyByEnrollment(t *testing.T) {
	svc, studentRepo, courseRepo := newCertificateFixture(t)

	student := seedStudent(t, studentRepo)
	course := &model.Course{Title: "Tally Prime"}
	if err := courseRepo.Create(course); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	for _, code := range []string{"PRG-CERT-001", "PRG-CERT-002"} {
		if _, err := svc.Create(CertificateCreateReq{
			StudentID:       student.ID,
			CourseID:        course.ID,
			CertificateCode: code,
		}); err != nil {
			t.Fatalf("create %s: %v", code, err)
		}
	}

	result, err := svc.VerifyByEnrollment(VerifyByEnrollmentReq{
		EnrollmentNo: student.EnrollmentNo,
		DOB:          "2001-03-14",
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	// Latest certificate wins.
	if result.CertificateCode != "PRG-CERT-002" {
		t.Fatalf("expected latest certificate, got %s", result.CertificateCode)
	}

	if _, err := svc.VerifyByEnrollment(VerifyByEnrollmentReq{
		EnrollmentNo: student.EnrollmentNo,
		DOB:          "1999-01-01",
	}); !errors.Is(err, util.ErrCertificateNotFound) {
		t.Fatalf("wrong dob: expected ErrCertificateNotFound, got %v", err)
	}
}

func TestCertificateCodeUnique(t *testing.T) {
	svc, studentRepo, courseRepo := newCertificateFixture(t)

	student := seedStudent(t, studentRepo)
	course := &model.Course{Title: "Typing"}
	if err := courseRepo.Create(course); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	req := CertificateCreateReq{
		StudentID:       student.ID,
		CourseID:        course.ID,
		CertificateCode: "PRG-CERT-DUP",
	}
	if _, err := svc.Create(req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(req); !errors.Is(err, util.ErrCertificateCodeTaken) {
		t.Fatalf("expected ErrCertificateCodeTaken, got %v", err)
	}
}
