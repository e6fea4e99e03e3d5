package model

import "time"

// swagger:model Expense
type Expense struct {
	BaseModel
	Title    string     `gorm:"size:200;not null" json:"title"`
	Amount   float64    `gorm:"not null" json:"amount"`
	Category string     `gorm:"size:80" json:"category"`
	PaidOn   *time.Time `gorm:"type:date" json:"paid_on"`
	Notes    string     `gorm:"type:text" json:"notes"`
}

func (Expense) TableName() string {
	return "expenses"
}
