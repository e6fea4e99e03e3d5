package repository

import (
	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

type DashboardSummary struct {
	TotalStudents     int64   `json:"total_students"`
	TotalCourses      int64   `json:"total_courses"`
	TotalEnquiries    int64   `json:"total_enquiries"`
	TotalFees         float64 `json:"total_fees"`
	TotalExpenses     float64 `json:"total_expenses"`
	TotalCertificates int64   `json:"total_certificates"`
	TotalGalleryItems int64   `json:"total_gallery_items"`
}

func (r *DashboardRepository) Summary() (*DashboardSummary, error) {
	var s DashboardSummary

	counts := []struct {
		mdl  interface{}
		dest *int64
	}{
		{&model.Student{}, &s.TotalStudents},
		{&model.Course{}, &s.TotalCourses},
		{&model.Enquiry{}, &s.TotalEnquiries},
		{&model.Certificate{}, &s.TotalCertificates},
		{&model.GalleryItem{}, &s.TotalGalleryItems},
	}
	for _, c := range counts {
		if err := r.DB.Model(c.mdl).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := r.DB.Model(&model.Fee{}).Select("COALESCE(SUM(amount), 0)").Scan(&s.TotalFees).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Expense{}).Select("COALESCE(SUM(amount), 0)").Scan(&s.TotalExpenses).Error; err != nil {
		return nil, err
	}

	return &s, nil
}
