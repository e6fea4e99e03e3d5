package repository

import (
	"time"

	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) Update(student *model.Student) error {
	return r.DB.Save(student).Error
}

func (r *StudentRepository) Delete(student *model.Student) error {
	return r.DB.Delete(student).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var s model.Student
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) FindByEnrollmentNo(enrollmentNo string) (*model.Student, error) {
	var s model.Student
	if err := r.DB.Where("enrollment_no = ?", enrollmentNo).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) FindByEnrollmentAndDOB(enrollmentNo string, dob time.Time) (*model.Student, error) {
	var s model.Student
	err := r.DB.Where("enrollment_no = ? AND dob = ?", enrollmentNo, dob).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) List() ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Order("id DESC").Find(&students).Error
	return students, err
}
