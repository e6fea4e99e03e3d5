package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"institute_backend/internal/config"
	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// StudentService manages student records, their photos and the
// staff-side password reset.
type StudentService struct {
	StudentRepo *repository.StudentRepository
	Storage     *StorageService
	Cfg         *config.Config
}

func NewStudentService(studentRepo *repository.StudentRepository, storage *StorageService, cfg *config.Config) *StudentService {
	return &StudentService{
		StudentRepo: studentRepo,
		Storage:     storage,
		Cfg:         cfg,
	}
}

type StudentCreateReq struct {
	EnrollmentNo string `json:"enrollment_no"`
	Name         string `json:"name" binding:"required"`
	FatherName   string `json:"father_name"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	CourseID     *uint  `json:"course_id"`
	DOB          string `json:"dob"`
	JoinDate     string `json:"join_date"`
	Status       string `json:"status"`
}

type StudentUpdateReq struct {
	Name       *string `json:"name"`
	FatherName *string `json:"father_name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	CourseID   *uint   `json:"course_id"`
	DOB        *string `json:"dob"`
	JoinDate   *string `json:"join_date"`
	Status     *string `json:"status"`
}

type SetPasswordReq struct {
	Password string `json:"password" binding:"required,min=6"`
}

func (s *StudentService) List() ([]model.Student, error) {
	return s.StudentRepo.List()
}

func (s *StudentService) Get(id uint) (*model.Student, error) {
	student, err := s.StudentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Create(req StudentCreateReq) (*model.Student, error) {
	enrollmentNo := strings.TrimSpace(req.EnrollmentNo)
	if enrollmentNo != "" {
		if _, err := s.StudentRepo.FindByEnrollmentNo(enrollmentNo); err == nil {
			return nil, util.ErrEnrollmentTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		generated, err := s.generateEnrollmentNo()
		if err != nil {
			return nil, err
		}
		enrollmentNo = generated
	}

	student := &model.Student{
		EnrollmentNo: enrollmentNo,
		Name:         req.Name,
		FatherName:   req.FatherName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		CourseID:     req.CourseID,
		Status:       "active",
	}
	if req.Status != "" {
		student.Status = req.Status
	}

	if req.DOB != "" {
		dob, err := util.ParseDate(req.DOB)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		student.DOB = &dob
	}
	if req.JoinDate != "" {
		joinDate, err := util.ParseDate(req.JoinDate)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		student.JoinDate = &joinDate
	} else {
		now := time.Now()
		student.JoinDate = &now
	}

	if err := s.StudentRepo.Create(student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEnrollmentTaken
		}
		return nil, err
	}
	return student, nil
}

// generateEnrollmentNo produces PRG-YYYYMMDD-NNNN with a random 4-digit
// suffix, retrying on collision.
func (s *StudentService) generateEnrollmentNo() (string, error) {
	datePart := time.Now().Format("20060102")
	for i := 0; i < 10; i++ {
		candidate := fmt.Sprintf("PRG-%s-%04d", datePart, rand.Intn(10000))
		_, err := s.StudentRepo.FindByEnrollmentNo(candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", util.ErrEnrollmentTaken
}

func (s *StudentService) Update(id uint, req StudentUpdateReq) (*model.Student, error) {
	student, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.FatherName != nil {
		student.FatherName = *req.FatherName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.CourseID != nil {
		student.CourseID = req.CourseID
	}
	if req.DOB != nil {
		dob, err := util.ParseDate(*req.DOB)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		student.DOB = &dob
	}
	if req.JoinDate != nil {
		joinDate, err := util.ParseDate(*req.JoinDate)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		student.JoinDate = &joinDate
	}
	if req.Status != nil {
		student.Status = *req.Status
	}

	if err := s.StudentRepo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(id uint) error {
	student, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.StudentRepo.Delete(student)
}

// UploadPhoto stores a new profile photo and removes the one it
// replaces. The stored object name is uuid-based, never the client's
// filename.
func (s *StudentService) UploadPhoto(ctx context.Context, id uint, file *multipart.FileHeader) (*model.Student, error) {
	student, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return nil, util.ErrInvalidFileType
	}
	if file.Size > s.Cfg.Media.MaxUploadMB*1024*1024 {
		return nil, util.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	objectName := "students/" + uuid.New().String() + ext
	url, err := s.Storage.Upload(ctx, objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	oldURL := student.PhotoURL
	student.PhotoURL = url
	if err := s.StudentRepo.Update(student); err != nil {
		return nil, err
	}

	if old := objectNameFromURL(oldURL); old != "" {
		// Best effort; a dangling object must not fail the upload.
		_ = s.Storage.Delete(ctx, old)
	}
	return student, nil
}

func (s *StudentService) SetPassword(id uint, req SetPasswordReq) (*model.Student, error) {
	student, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	student.LoginPasswordHash = string(hash)
	student.LoginEnabled = true
	if err := s.StudentRepo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

// objectNameFromURL recovers the stored object name from a URL this
// service produced. Only local-style "/uploads/..." URLs are reversible;
// remote URLs return empty and are left alone.
func objectNameFromURL(url string) string {
	if strings.HasPrefix(url, "/uploads/") {
		return strings.TrimPrefix(url, "/uploads/")
	}
	return ""
}
