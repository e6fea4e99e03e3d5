package service

import (
	"errors"
	"time"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"gorm.io/gorm"
)

// CertificateService manages issued certificates and the two public
// verification paths: by certificate code, and by enrollment number
// plus date of birth.
type CertificateService struct {
	CertRepo    *repository.CertificateRepository
	StudentRepo *repository.StudentRepository
	CourseRepo  *repository.CourseRepository
}

func NewCertificateService(certRepo *repository.CertificateRepository, studentRepo *repository.StudentRepository, courseRepo *repository.CourseRepository) *CertificateService {
	return &CertificateService{
		CertRepo:    certRepo,
		StudentRepo: studentRepo,
		CourseRepo:  courseRepo,
	}
}

type CertificateCreateReq struct {
	StudentID       uint     `json:"student_id" binding:"required"`
	CourseID        uint     `json:"course_id" binding:"required"`
	IssuedOn        string   `json:"issued_on"`
	CertificateCode string   `json:"certificate_code" binding:"required"`
	QRURL           string   `json:"qr_url"`
	Grade           string   `json:"grade"`
	Percentage      *float64 `json:"percentage"`
	Status          string   `json:"status"`
}

type CertificateUpdateReq struct {
	IssuedOn   *string  `json:"issued_on"`
	QRURL      *string  `json:"qr_url"`
	Grade      *string  `json:"grade"`
	Percentage *float64 `json:"percentage"`
	Status     *string  `json:"status"`
}

// VerificationResult is the public view joined with the student and
// course a certificate was issued for.
type VerificationResult struct {
	CertificateCode string     `json:"certificate_code"`
	StudentName     string     `json:"student_name"`
	EnrollmentNo    string     `json:"enrollment_no"`
	CourseName      string     `json:"course_name"`
	IssuedOn        *time.Time `json:"issued_on"`
	Grade           string     `json:"grade"`
	Percentage      *float64   `json:"percentage"`
	Status          string     `json:"status"`
	QRURL           string     `json:"qr_url"`
}

type VerifyByEnrollmentReq struct {
	EnrollmentNo string `json:"enrollment_no" binding:"required"`
	DOB          string `json:"dob" binding:"required"`
}

func (s *CertificateService) List() ([]model.Certificate, error) {
	return s.CertRepo.List()
}

func (s *CertificateService) Get(id uint) (*model.Certificate, error) {
	cert, err := s.CertRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return cert, nil
}

func (s *CertificateService) Create(req CertificateCreateReq) (*model.Certificate, error) {
	if _, err := s.CertRepo.FindByCode(req.CertificateCode); err == nil {
		return nil, util.ErrCertificateCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.StudentRepo.FindByID(req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	cert := &model.Certificate{
		StudentID:       req.StudentID,
		CourseID:        req.CourseID,
		CertificateCode: req.CertificateCode,
		QRURL:           req.QRURL,
		Grade:           req.Grade,
		Percentage:      req.Percentage,
		Status:          "valid",
	}
	if req.Status != "" {
		cert.Status = req.Status
	}
	if req.IssuedOn != "" {
		issued, err := util.ParseDate(req.IssuedOn)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		cert.IssuedOn = &issued
	} else {
		now := time.Now()
		cert.IssuedOn = &now
	}

	if err := s.CertRepo.Create(cert); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrCertificateCodeTaken
		}
		return nil, err
	}
	return cert, nil
}

func (s *CertificateService) Update(id uint, req CertificateUpdateReq) (*model.Certificate, error) {
	cert, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.IssuedOn != nil {
		issued, err := util.ParseDate(*req.IssuedOn)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		cert.IssuedOn = &issued
	}
	if req.QRURL != nil {
		cert.QRURL = *req.QRURL
	}
	if req.Grade != nil {
		cert.Grade = *req.Grade
	}
	if req.Percentage != nil {
		cert.Percentage = req.Percentage
	}
	if req.Status != nil {
		cert.Status = *req.Status
	}

	if err := s.CertRepo.Update(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *CertificateService) Delete(id uint) error {
	cert, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.CertRepo.Delete(cert)
}

// VerifyByCode resolves a certificate code to the joined public view.
func (s *CertificateService) VerifyByCode(code string) (*VerificationResult, error) {
	cert, err := s.CertRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return s.buildResult(cert)
}

// VerifyByEnrollment finds the latest certificate for the student whose
// enrollment number and date of birth both match. A wrong date of birth
// gives the same error as an unknown enrollment number.
func (s *CertificateService) VerifyByEnrollment(req VerifyByEnrollmentReq) (*VerificationResult, error) {
	dob, err := util.ParseDate(req.DOB)
	if err != nil {
		return nil, util.ErrCertificateNotFound
	}

	student, err := s.StudentRepo.FindByEnrollmentAndDOB(req.EnrollmentNo, dob)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}

	cert, err := s.CertRepo.FindLatestByStudent(student.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return s.buildResult(cert)
}

func (s *CertificateService) buildResult(cert *model.Certificate) (*VerificationResult, error) {
	result := &VerificationResult{
		CertificateCode: cert.CertificateCode,
		IssuedOn:        cert.IssuedOn,
		Grade:           cert.Grade,
		Percentage:      cert.Percentage,
		Status:          cert.Status,
		QRURL:           cert.QRURL,
	}

	student, err := s.StudentRepo.FindByID(cert.StudentID)
	if err == nil {
		result.StudentName = student.Name
		result.EnrollmentNo = student.EnrollmentNo
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(cert.CourseID)
	if err == nil {
		result.CourseName = course.Title
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return result, nil
}
