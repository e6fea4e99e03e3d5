package service

import (
	"errors"
	"time"

	"institute_backend/internal/config"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StudentAuthService handles the student authentication realm. A student
// row is created by staff; the student later claims it with their
// enrollment number and date of birth, which enables login.
type StudentAuthService struct {
	StudentRepo *repository.StudentRepository
	Cfg         *config.Config
}

func NewStudentAuthService(studentRepo *repository.StudentRepository, cfg *config.Config) *StudentAuthService {
	return &StudentAuthService{
		StudentRepo: studentRepo,
		Cfg:         cfg,
	}
}

type StudentRegisterReq struct {
	EnrollmentNo string `json:"enrollment_no" binding:"required"`
	DOB          string `json:"dob" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
}

type StudentLoginReq struct {
	EnrollmentNo string `json:"enrollment_no" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

func (s *StudentAuthService) Register(req StudentRegisterReq) (string, error) {
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return "", util.ErrStudentNotFound
	}

	student, err := s.StudentRepo.FindByEnrollmentAndDOB(req.EnrollmentNo, dob)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrStudentNotFound
		}
		return "", err
	}
	if student.LoginEnabled {
		return "", util.ErrLoginAlreadyEnabled
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	student.LoginPasswordHash = string(hash)
	student.LoginEnabled = true
	if err := s.StudentRepo.Update(student); err != nil {
		return "", err
	}

	return util.GenerateStudentJWT(student, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *StudentAuthService) Login(req StudentLoginReq) (string, error) {
	student, err := s.StudentRepo.FindByEnrollmentNo(req.EnrollmentNo)
	if err != nil || !student.LoginEnabled {
		return "", util.ErrLoginNotEnabled
	}
	if student.LoginPasswordHash == "" {
		return "", util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.LoginPasswordHash), []byte(req.Password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateStudentJWT(student, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}
