package model

import "time"

// swagger:model Student
type Student struct {
	BaseModel
	EnrollmentNo      string     `gorm:"size:50;uniqueIndex" json:"enrollment_no"`
	Name              string     `gorm:"size:120;not null" json:"name"`
	FatherName        string     `gorm:"size:120" json:"father_name"`
	Phone             string     `gorm:"size:30;not null" json:"phone"`
	Email             string     `gorm:"size:120" json:"email"`
	Address           string     `gorm:"size:255" json:"address"`
	CourseID          *uint      `gorm:"index" json:"course_id"`
	DOB               *time.Time `gorm:"type:date" json:"dob"`
	PhotoURL          string     `gorm:"size:255" json:"photo_url"`
	LoginPasswordHash string     `gorm:"size:255" json:"-"`
	LoginEnabled      bool       `gorm:"default:false" json:"login_enabled"`
	JoinDate          *time.Time `gorm:"type:date" json:"join_date"`
	Status            string     `gorm:"size:50;default:'active'" json:"status"`
}

func (Student) TableName() string {
	return "students"
}
