package model

// swagger:model Course
type Course struct {
	BaseModel
	TradeID     *uint   `gorm:"index" json:"trade_id"`
	Title       string  `gorm:"size:200;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Duration    string  `gorm:"size:100" json:"duration"`
	Fee         float64 `json:"fee"`
	IsActive    bool    `json:"is_active"`
}

func (Course) TableName() string {
	return "courses"
}
