package repository

import (
	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type TradeRepository struct {
	DB *gorm.DB
}

func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{DB: db}
}

func (r *TradeRepository) Create(trade *model.Trade) error {
	return r.DB.Create(trade).Error
}

func (r *TradeRepository) Update(trade *model.Trade) error {
	return r.DB.Save(trade).Error
}

func (r *TradeRepository) Delete(trade *model.Trade) error {
	return r.DB.Delete(trade).Error
}

func (r *TradeRepository) FindByID(id uint) (*model.Trade, error) {
	var t model.Trade
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TradeRepository) List() ([]model.Trade, error) {
	var trades []model.Trade
	err := r.DB.Order("id DESC").Find(&trades).Error
	return trades, err
}
