package model

// swagger:model Enquiry
type Enquiry struct {
	BaseModel
	Name    string `gorm:"size:120;not null" json:"name"`
	Phone   string `gorm:"size:30;not null" json:"phone"`
	Email   string `gorm:"size:120" json:"email"`
	Message string `gorm:"type:text" json:"message"`
	Source  string `gorm:"size:50;default:'website'" json:"source"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}
