package service

import (
	"errors"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

type CourseCreateReq struct {
	TradeID     *uint   `json:"trade_id"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Fee         float64 `json:"fee"`
	IsActive    *bool   `json:"is_active"`
}

type CourseUpdateReq struct {
	TradeID     *uint    `json:"trade_id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Duration    *string  `json:"duration"`
	Fee         *float64 `json:"fee"`
	IsActive    *bool    `json:"is_active"`
}

// List returns all courses for staff; ListPublic only the active ones
// shown on the website.
func (s *CourseService) List() ([]model.Course, error) {
	return s.CourseRepo.List()
}

func (s *CourseService) ListPublic() ([]model.Course, error) {
	return s.CourseRepo.ListActive()
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Create(req CourseCreateReq) (*model.Course, error) {
	course := &model.Course{
		TradeID:     req.TradeID,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Fee:         req.Fee,
		IsActive:    true,
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Update(id uint, req CourseUpdateReq) (*model.Course, error) {
	course, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.TradeID != nil {
		course.TradeID = req.TradeID
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Fee != nil {
		course.Fee = *req.Fee
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(id uint) error {
	course, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.CourseRepo.Delete(course)
}
