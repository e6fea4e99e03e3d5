package service

import (
	"errors"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"gorm.io/gorm"
)

// EnquiryService records public contact-form submissions; staff can
// list and clear them.
type EnquiryService struct {
	EnquiryRepo *repository.EnquiryRepository
}

func NewEnquiryService(enquiryRepo *repository.EnquiryRepository) *EnquiryService {
	return &EnquiryService{EnquiryRepo: enquiryRepo}
}

type EnquiryCreateReq struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

func (s *EnquiryService) List() ([]model.Enquiry, error) {
	return s.EnquiryRepo.List()
}

func (s *EnquiryService) Get(id uint) (*model.Enquiry, error) {
	enquiry, err := s.EnquiryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnquiryNotFound
		}
		return nil, err
	}
	return enquiry, nil
}

func (s *EnquiryService) Create(req EnquiryCreateReq) (*model.Enquiry, error) {
	enquiry := &model.Enquiry{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
		Source:  "website",
	}
	if req.Source != "" {
		enquiry.Source = req.Source
	}
	if err := s.EnquiryRepo.Create(enquiry); err != nil {
		return nil, err
	}
	return enquiry, nil
}

func (s *EnquiryService) Delete(id uint) error {
	enquiry, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.EnquiryRepo.Delete(enquiry)
}
