package repository

import (
	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	return r.DB.Create(cert).Error
}

func (r *CertificateRepository) Update(cert *model.Certificate) error {
	return r.DB.Save(cert).Error
}

func (r *CertificateRepository) Delete(cert *model.Certificate) error {
	return r.DB.Delete(cert).Error
}

func (r *CertificateRepository) FindByID(id uint) (*model.Certificate, error) {
	var c model.Certificate
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepository) FindByCode(code string) (*model.Certificate, error) {
	var c model.Certificate
	if err := r.DB.Where("certificate_code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepository) FindLatestByStudent(studentID uint) (*model.Certificate, error) {
	var c model.Certificate
	err := r.DB.Where("student_id = ?", studentID).Order("id DESC").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepository) List() ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.DB.Order("id DESC").Find(&certs).Error
	return certs, err
}
