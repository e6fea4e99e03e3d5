package service

import (
	"errors"
	"time"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"gorm.io/gorm"
)

type FeeService struct {
	FeeRepo     *repository.FeeRepository
	StudentRepo *repository.StudentRepository
}

func NewFeeService(feeRepo *repository.FeeRepository, studentRepo *repository.StudentRepository) *FeeService {
	return &FeeService{
		FeeRepo:     feeRepo,
		StudentRepo: studentRepo,
	}
}

type FeeCreateReq struct {
	StudentID uint    `json:"student_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Mode      string  `json:"mode"`
	PaidOn    string  `json:"paid_on"`
	ReceiptNo string  `json:"receipt_no"`
}

type FeeUpdateReq struct {
	Amount    *float64 `json:"amount"`
	Mode      *string  `json:"mode"`
	PaidOn    *string  `json:"paid_on"`
	ReceiptNo *string  `json:"receipt_no"`
}

// List returns fee records, optionally scoped to one student when
// studentID is non-zero.
func (s *FeeService) List(studentID uint) ([]model.Fee, error) {
	return s.FeeRepo.List(studentID)
}

func (s *FeeService) Get(id uint) (*model.Fee, error) {
	fee, err := s.FeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrFeeNotFound
		}
		return nil, err
	}
	return fee, nil
}

func (s *FeeService) Create(req FeeCreateReq) (*model.Fee, error) {
	if _, err := s.StudentRepo.FindByID(req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	fee := &model.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Mode:      req.Mode,
		ReceiptNo: req.ReceiptNo,
	}
	if req.PaidOn != "" {
		paidOn, err := util.ParseDate(req.PaidOn)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		fee.PaidOn = &paidOn
	} else {
		now := time.Now()
		fee.PaidOn = &now
	}

	if err := s.FeeRepo.Create(fee); err != nil {
		return nil, err
	}
	return fee, nil
}

func (s *FeeService) Update(id uint, req FeeUpdateReq) (*model.Fee, error) {
	fee, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		fee.Amount = *req.Amount
	}
	if req.Mode != nil {
		fee.Mode = *req.Mode
	}
	if req.PaidOn != nil {
		paidOn, err := util.ParseDate(*req.PaidOn)
		if err != nil {
			return nil, util.ErrInvalidDate
		}
		fee.PaidOn = &paidOn
	}
	if req.ReceiptNo != nil {
		fee.ReceiptNo = *req.ReceiptNo
	}

	if err := s.FeeRepo.Update(fee); err != nil {
		return nil, err
	}
	return fee, nil
}

func (s *FeeService) Delete(id uint) error {
	fee, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.FeeRepo.Delete(fee)
}
