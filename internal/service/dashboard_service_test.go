package service

import (
	"context"
	"testing"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
)

func TestDashboardSummaryWithoutCache(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db), nil)

	students := []model.Student{
		{EnrollmentNo: "PRG-20240101-0001", Name: "A", Phone: "1"},
		{EnrollmentNo: "PRG-20240101-0002", Name: "B", Phone: "2"},
	}
	if err := db.Create(&students).Error; err != nil {
		t.Fatalf("seed students: %v", err)
	}
	fees := []model.Fee{
		{StudentID: students[0].ID, Amount: 1500},
		{StudentID: students[1].ID, Amount: 2500},
	}
	if err := db.Create(&fees).Error; err != nil {
		t.Fatalf("seed fees: %v", err)
	}
	if err := db.Create(&model.Expense{Title: "rent", Amount: 1200}).Error; err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalStudents != 2 {
		t.Fatalf("expected 2 students, got %d", summary.TotalStudents)
	}
	if summary.TotalFees != 4000 {
		t.Fatalf("expected fee total 4000, got %v", summary.TotalFees)
	}
	if summary.TotalExpenses != 1200 {
		t.Fatalf("expected expense total 1200, got %v", summary.TotalExpenses)
	}
}

func TestDashboardSummaryEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db), nil)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalStudents != 0 || summary.TotalFees != 0 || summary.TotalExpenses != 0 {
		t.Fatalf("empty database should yield zero totals: %+v", summary)
	}
}
