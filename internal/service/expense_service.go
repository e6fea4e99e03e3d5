package service

import (
	"errors"
	"time"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"gorm.io/gorm"
)

type ExpenseService struct {
	ExpenseRepo *repository.ExpenseRepository
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{ExpenseRepo: expenseRepo}
}

type ExpenseCreateReq struct {
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category"`
	PaidOn   string  `json:"paid_on"`
	Notes    string  `json:"notes"`
}

type ExpenseUpdateReq struct {
	Title    *string  `json:"title"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	PaidOn   *string  `json:"paid_on"`
	Notes    *string  `json:"notes"`
}

func (s *ExpenseService) List() ([]model.Expense, error) {
	return s.ExpenseRepo.List()
}

func (s *ExpenseService) Get(id uint) (*model.Expense, error) {
	expense, err := s.ExpenseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Create(req ExpenseCreateReq) (*model.Expense, error) {
	expense := &model.Expense{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Notes:    req.Notes,
	}
	if req.PaidOn != "" {
		paidOn, err := util.ParseDate(req.PaidOn)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		expense.PaidOn = &paidOn
	} else {
		now := time.Now()
		expense.PaidOn = &now
	}

	if err := s.ExpenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Update(id uint, req ExpenseUpdateReq) (*model.Expense, error) {
	expense, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.PaidOn != nil {
		paidOn, err := util.ParseDate(*req.PaidOn)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		expense.PaidOn = &paidOn
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}

	if err := s.ExpenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Delete(id uint) error {
	expense, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.ExpenseRepo.Delete(expense)
}
