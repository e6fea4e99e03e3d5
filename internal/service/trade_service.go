package service

import (
	"errors"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"gorm.io/gorm"
)

type TradeService struct {
	TradeRepo *repository.TradeRepository
}

func NewTradeService(tradeRepo *repository.TradeRepository) *TradeService {
	return &TradeService{TradeRepo: tradeRepo}
}

type TradeCreateReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type TradeUpdateReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (s *TradeService) List() ([]model.Trade, error) {
	return s.TradeRepo.List()
}

func (s *TradeService) Get(id uint) (*model.Trade, error) {
	trade, err := s.TradeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTradeNotFound
		}
		return nil, err
	}
	return trade, nil
}

func (s *TradeService) Create(req TradeCreateReq) (*model.Trade, error) {
	trade := &model.Trade{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		trade.IsActive = *req.IsActive
	}
	if err := s.TradeRepo.Create(trade); err != nil {
		return nil, err
	}
	return trade, nil
}

func (s *TradeService) Update(id uint, req TradeUpdateReq) (*model.Trade, error) {
	trade, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trade.Name = *req.Name
	}
	if req.Description != nil {
		trade.Description = *req.Description
	}
	if req.IsActive != nil {
		trade.IsActive = *req.IsActive
	}

	if err := s.TradeRepo.Update(trade); err != nil {
		return nil, err
	}
	return trade, nil
}

func (s *TradeService) Delete(id uint) error {
	trade, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.TradeRepo.Delete(trade)
}
