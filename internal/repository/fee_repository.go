package repository

import (
	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type FeeRepository struct {
	DB *gorm.DB
}

func NewFeeRepository(db *gorm.DB) *FeeRepository {
	return &FeeRepository{DB: db}
}

func (r *FeeRepository) Create(fee *model.Fee) error {
	return r.DB.Create(fee).Error
}

func (r *FeeRepository) Update(fee *model.Fee) error {
	return r.DB.Save(fee).Error
}

func (r *FeeRepository) Delete(fee *model.Fee) error {
	return r.DB.Delete(fee).Error
}

func (r *FeeRepository) FindByID(id uint) (*model.Fee, error) {
	var f model.Fee
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeeRepository) List(studentID uint) ([]model.Fee, error) {
	var fees []model.Fee
	q := r.DB.Order("id DESC")
	if studentID != 0 {
		q = q.Where("student_id = ?", studentID)
	}
	err := q.Find(&fees).Error
	return fees, err
}
