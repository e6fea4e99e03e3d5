package repository

import (
	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) Create(item *model.GalleryItem) error {
	return r.DB.Create(item).Error
}

func (r *GalleryRepository) Update(item *model.GalleryItem) error {
	return r.DB.Save(item).Error
}

func (r *GalleryRepository) Delete(item *model.GalleryItem) error {
	return r.DB.Delete(item).Error
}

func (r *GalleryRepository) FindByID(id uint) (*model.GalleryItem, error) {
	var g model.GalleryItem
	if err := r.DB.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) List() ([]model.GalleryItem, error) {
	var items []model.GalleryItem
	err := r.DB.Order("id DESC").Find(&items).Error
	return items, err
}

func (r *GalleryRepository) ListActive() ([]model.GalleryItem, error) {
	var items []model.GalleryItem
	err := r.DB.Where("is_active = ?", true).Order("id DESC").Find(&items).Error
	return items, err
}
