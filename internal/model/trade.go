package model

// swagger:model Trade
type Trade struct {
	BaseModel
	Name        string `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `json:"is_active"`
}

func (Trade) TableName() string {
	return "trades"
}
