package repository

import (
	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type EnquiryRepository struct {
	DB *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{DB: db}
}

func (r *EnquiryRepository) Create(enquiry *model.Enquiry) error {
	return r.DB.Create(enquiry).Error
}

func (r *EnquiryRepository) Delete(enquiry *model.Enquiry) error {
	return r.DB.Delete(enquiry).Error
}

func (r *EnquiryRepository) FindByID(id uint) (*model.Enquiry, error) {
	var e model.Enquiry
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnquiryRepository) List() ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	err := r.DB.Order("id DESC").Find(&enquiries).Error
	return enquiries, err
}
