package model

import "time"

// swagger:model Fee
type Fee struct {
	BaseModel
	StudentID uint       `gorm:"index;not null" json:"student_id"`
	Amount    float64    `gorm:"not null" json:"amount"`
	Mode      string     `gorm:"size:30" json:"mode"`
	PaidOn    *time.Time `gorm:"type:date" json:"paid_on"`
	ReceiptNo string     `gorm:"size:50" json:"receipt_no"`
}

func (Fee) TableName() string {
	return "fees"
}
