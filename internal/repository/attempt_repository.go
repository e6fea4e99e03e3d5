package repository

import (
	"time"

	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.ExamAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id uint) (*model.ExamAttempt, error) {
	var a model.ExamAttempt
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttemptRepository) FindByExamAndStudent(examID, studentID uint) (*model.ExamAttempt, error) {
	var a model.ExamAttempt
	err := r.DB.Where("exam_id = ? AND student_id = ?", examID, studentID).
		Order("id DESC").First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttemptRepository) ListByStudent(studentID uint) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.DB.Where("student_id = ?", studentID).Order("id DESC").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListAnswers(attemptID uint) ([]model.ExamAnswer, error) {
	var answers []model.ExamAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).Order("id ASC").Find(&answers).Error
	return answers, err
}

// Finalize closes an attempt and records its answers atomically. The
// status transition is a conditional update: when a concurrent submit
// already claimed the attempt, zero rows match and claimed is false,
// leaving the attempt untouched.
func (r *AttemptRepository) Finalize(attemptID uint, submittedAt time.Time, totalScore float64, answers []model.ExamAnswer) (claimed bool, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ExamAttempt{}).
			Where("id = ? AND status = ?", attemptID, model.AttemptInProgress).
			Updates(map[string]interface{}{
				"status":       model.AttemptSubmitted,
				"submitted_at": submittedAt,
				"total_score":  totalScore,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		claimed = true
		if len(answers) == 0 {
			return nil
		}
		return tx.Create(&answers).Error
	})
	return claimed, err
}
