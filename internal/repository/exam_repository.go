package repository

import (
	"time"

	"institute_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) Update(exam *model.Exam) error {
	return r.DB.Save(exam).Error
}

func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.DB.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) FindActiveByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) List() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Order("id DESC").Find(&exams).Error
	return exams, err
}

// ListAvailable returns active exams whose visibility window contains now.
// A missing window bound is treated as unbounded.
func (r *ExamRepository) ListAvailable(now time.Time) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.
		Where("is_active = ?", true).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		Order("id DESC").
		Find(&exams).Error
	return exams, err
}

// DeleteCascade removes an exam with its questions, options, attempts
// and answers in one transaction. Answers go first while their attempts
// are still visible to the subquery.
func (r *ExamRepository) DeleteCascade(exam *model.Exam) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		attemptIDs := tx.Model(&model.ExamAttempt{}).Select("id").Where("exam_id = ?", exam.ID)
		if err := tx.Where("attempt_id IN (?)", attemptIDs).Delete(&model.ExamAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", exam.ID).Delete(&model.ExamAttempt{}).Error; err != nil {
			return err
		}
		questionIDs := tx.Model(&model.ExamQuestion{}).Select("id").Where("exam_id = ?", exam.ID)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.ExamOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", exam.ID).Delete(&model.ExamQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(exam).Error
	})
}

func (r *ExamRepository) CreateQuestion(question *model.ExamQuestion) error {
	return r.DB.Create(question).Error
}

func (r *ExamRepository) UpdateQuestion(question *model.ExamQuestion) error {
	return r.DB.Save(question).Error
}

func (r *ExamRepository) FindQuestionByID(id uint) (*model.ExamQuestion, error) {
	var q model.ExamQuestion
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *ExamRepository) ListQuestions(examID uint) ([]model.ExamQuestion, error) {
	var questions []model.ExamQuestion
	err := r.DB.Where("exam_id = ?", examID).Order("id ASC").Find(&questions).Error
	return questions, err
}

// DeleteQuestionCascade removes a question and its options.
func (r *ExamRepository) DeleteQuestionCascade(question *model.ExamQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", question.ID).Delete(&model.ExamOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(question).Error
	})
}

func (r *ExamRepository) CreateOption(option *model.ExamOption) error {
	return r.DB.Create(option).Error
}

func (r *ExamRepository) CreateOptions(options []model.ExamOption) error {
	if len(options) == 0 {
		return nil
	}
	return r.DB.Create(&options).Error
}

func (r *ExamRepository) UpdateOption(option *model.ExamOption) error {
	return r.DB.Save(option).Error
}

func (r *ExamRepository) DeleteOption(option *model.ExamOption) error {
	return r.DB.Delete(option).Error
}

func (r *ExamRepository) FindOption(questionID, optionID uint) (*model.ExamOption, error) {
	var o model.ExamOption
	err := r.DB.Where("id = ? AND question_id = ?", optionID, questionID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ExamRepository) ListOptions(questionID uint) ([]model.ExamOption, error) {
	var options []model.ExamOption
	err := r.DB.Where("question_id = ?", questionID).Order("id ASC").Find(&options).Error
	return options, err
}

// ListOptionsForExam loads every option of an exam in one query, for
// assembling question views without per-question round trips.
func (r *ExamRepository) ListOptionsForExam(examID uint) ([]model.ExamOption, error) {
	var options []model.ExamOption
	questionIDs := r.DB.Model(&model.ExamQuestion{}).Select("id").Where("exam_id = ?", examID)
	err := r.DB.Where("question_id IN (?)", questionIDs).Order("id ASC").Find(&options).Error
	return options, err
}
