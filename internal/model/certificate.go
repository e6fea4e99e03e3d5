package model

import "time"

// swagger:model Certificate
type Certificate struct {
	BaseModel
	StudentID       uint       `gorm:"index;not null" json:"student_id"`
	CourseID        uint       `gorm:"index;not null" json:"course_id"`
	IssuedOn        *time.Time `gorm:"type:date" json:"issued_on"`
	CertificateCode string     `gorm:"size:100;uniqueIndex;not null" json:"certificate_code"`
	QRURL           string     `gorm:"size:255" json:"qr_url"`
	Grade           string     `gorm:"size:20" json:"grade"`
	Percentage      *float64   `json:"percentage"`
	Status          string     `gorm:"size:50;default:'valid'" json:"status"`
}

func (Certificate) TableName() string {
	return "certificates"
}
