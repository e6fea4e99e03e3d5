package repository

import (
	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(course *model.Course) error {
	return r.DB.Delete(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var c model.Course
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) List() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("id DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListActive() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("is_active = ?", true).Order("id DESC").Find(&courses).Error
	return courses, err
}
