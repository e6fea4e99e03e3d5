package repository

import (
	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

func (r *ExpenseRepository) Create(expense *model.Expense) error {
	return r.DB.Create(expense).Error
}

func (r *ExpenseRepository) Update(expense *model.Expense) error {
	return r.DB.Save(expense).Error
}

func (r *ExpenseRepository) Delete(expense *model.Expense) error {
	return r.DB.Delete(expense).Error
}

func (r *ExpenseRepository) FindByID(id uint) (*model.Expense, error) {
	var e model.Expense
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) List() ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.DB.Order("id DESC").Find(&expenses).Error
	return expenses, err
}
