package service

import (
	"errors"
	"time"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"gorm.io/gorm"
)

// ExamService covers the staff side of the exam module: exam, question
// and option administration.
type ExamService struct {
	Repo *repository.ExamRepository
}

func NewExamService(repo *repository.ExamRepository) *ExamService {
	return &ExamService{Repo: repo}
}

type ExamCreateReq struct {
	Title                  string     `json:"title" binding:"required"`
	Description            string     `json:"description"`
	DurationMinutes        int        `json:"duration_minutes" binding:"required"`
	TotalMarks             *float64   `json:"total_marks"`
	PassMarks              *float64   `json:"pass_marks"`
	NegativeMarkingEnabled bool       `json:"negative_marking_enabled"`
	NegativeMarkValue      *float64   `json:"negative_mark_value"`
	IsActive               *bool      `json:"is_active"`
	StartAt                *time.Time `json:"start_at"`
	EndAt                  *time.Time `json:"end_at"`
}

// ExamUpdateReq applies only the fields the caller supplied.
type ExamUpdateReq struct {
	Title                  *string    `json:"title"`
	Description            *string    `json:"description"`
	DurationMinutes        *int       `json:"duration_minutes"`
	TotalMarks             *float64   `json:"total_marks"`
	PassMarks              *float64   `json:"pass_marks"`
	NegativeMarkingEnabled *bool      `json:"negative_marking_enabled"`
	NegativeMarkValue      *float64   `json:"negative_mark_value"`
	IsActive               *bool      `json:"is_active"`
	StartAt                *time.Time `json:"start_at"`
	EndAt                  *time.Time `json:"end_at"`
}

type OptionReq struct {
	OptionText string `json:"option_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

type OptionUpdateReq struct {
	OptionText *string `json:"option_text"`
	IsCorrect  *bool   `json:"is_correct"`
}

type QuestionCreateReq struct {
	QuestionText  string      `json:"question_text" binding:"required"`
	Marks         *float64    `json:"marks"`
	NegativeMarks *float64    `json:"negative_marks"`
	Options       []OptionReq `json:"options"`
}

type QuestionUpdateReq struct {
	QuestionText  *string  `json:"question_text"`
	Marks         *float64 `json:"marks"`
	NegativeMarks *float64 `json:"negative_marks"`
}

// QuestionDetail is the staff view: options keep their stored
// correctness flags.
type QuestionDetail struct {
	ID            uint               `json:"id"`
	QuestionText  string             `json:"question_text"`
	Marks         float64            `json:"marks"`
	NegativeMarks *float64           `json:"negative_marks"`
	Options       []model.ExamOption `json:"options"`
}

func (s *ExamService) CreateExam(req ExamCreateReq) (*model.Exam, error) {
	exam := &model.Exam{
		Title:                  req.Title,
		Description:            req.Description,
		DurationMinutes:        req.DurationMinutes,
		TotalMarks:             req.TotalMarks,
		PassMarks:              req.PassMarks,
		NegativeMarkingEnabled: req.NegativeMarkingEnabled,
		NegativeMarkValue:      req.NegativeMarkValue,
		IsActive:               true,
		StartAt:                req.StartAt,
		EndAt:                  req.EndAt,
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}
	if err := s.Repo.Create(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) ListExams() ([]model.Exam, error) {
	return s.Repo.List()
}

func (s *ExamService) GetExam(examID uint) (*model.Exam, error) {
	exam, err := s.Repo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) UpdateExam(examID uint, req ExamUpdateReq) (*model.Exam, error) {
	exam, err := s.GetExam(examID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		exam.Title = *req.Title
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		exam.DurationMinutes = *req.DurationMinutes
	}
	if req.TotalMarks != nil {
		exam.TotalMarks = req.TotalMarks
	}
	if req.PassMarks != nil {
		exam.PassMarks = req.PassMarks
	}
	if req.NegativeMarkingEnabled != nil {
		exam.NegativeMarkingEnabled = *req.NegativeMarkingEnabled
	}
	if req.NegativeMarkValue != nil {
		exam.NegativeMarkValue = req.NegativeMarkValue
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}
	if req.StartAt != nil {
		exam.StartAt = req.StartAt
	}
	if req.EndAt != nil {
		exam.EndAt = req.EndAt
	}

	if err := s.Repo.Update(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) DeleteExam(examID uint) error {
	exam, err := s.GetExam(examID)
	if err != nil {
		return err
	}
	return s.Repo.DeleteCascade(exam)
}

func (s *ExamService) ListQuestions(examID uint) ([]QuestionDetail, error) {
	if _, err := s.GetExam(examID); err != nil {
		return nil, err
	}

	questions, err := s.Repo.ListQuestions(examID)
	if err != nil {
		return nil, err
	}

	details := make([]QuestionDetail, 0, len(questions))
	for _, q := range questions {
		options, err := s.Repo.ListOptions(q.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, QuestionDetail{
			ID:            q.ID,
			QuestionText:  q.QuestionText,
			Marks:         q.Marks,
			NegativeMarks: q.NegativeMarks,
			Options:       options,
		})
	}
	return details, nil
}

func (s *ExamService) CreateQuestion(examID uint, req QuestionCreateReq) (*QuestionDetail, error) {
	if _, err := s.GetExam(examID); err != nil {
		return nil, err
	}
	if len(req.Options) == 0 {
		return nil, util.ErrOptionsRequired
	}

	marks := 1.0
	if req.Marks != nil {
		marks = *req.Marks
	}

	question := &model.ExamQuestion{
		ExamID:        examID,
		QuestionText:  req.QuestionText,
		Marks:         marks,
		NegativeMarks: req.NegativeMarks,
	}
	if err := s.Repo.CreateQuestion(question); err != nil {
		return nil, err
	}

	options := make([]model.ExamOption, 0, len(req.Options))
	for _, o := range req.Options {
		options = append(options, model.ExamOption{
			QuestionID: question.ID,
			OptionText: o.OptionText,
			IsCorrect:  o.IsCorrect,
		})
	}
	if err := s.Repo.CreateOptions(options); err != nil {
		return nil, err
	}

	return &QuestionDetail{
		ID:            question.ID,
		QuestionText:  question.QuestionText,
		Marks:         question.Marks,
		NegativeMarks: question.NegativeMarks,
		Options:       options,
	}, nil
}

func (s *ExamService) UpdateQuestion(questionID uint, req QuestionUpdateReq) (*QuestionDetail, error) {
	question, err := s.Repo.FindQuestionByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.Marks != nil {
		question.Marks = *req.Marks
	}
	if req.NegativeMarks != nil {
		question.NegativeMarks = req.NegativeMarks
	}

	if err := s.Repo.UpdateQuestion(question); err != nil {
		return nil, err
	}

	options, err := s.Repo.ListOptions(question.ID)
	if err != nil {
		return nil, err
	}
	return &QuestionDetail{
		ID:            question.ID,
		QuestionText:  question.QuestionText,
		Marks:         question.Marks,
		NegativeMarks: question.NegativeMarks,
		Options:       options,
	}, nil
}

func (s *ExamService) DeleteQuestion(questionID uint) error {
	question, err := s.Repo.FindQuestionByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.Repo.DeleteQuestionCascade(question)
}

func (s *ExamService) AddOption(questionID uint, req OptionReq) (*model.ExamOption, error) {
	if _, err := s.Repo.FindQuestionByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	option := &model.ExamOption{
		QuestionID: questionID,
		OptionText: req.OptionText,
		IsCorrect:  req.IsCorrect,
	}
	if err := s.Repo.CreateOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *ExamService) UpdateOption(questionID, optionID uint, req OptionUpdateReq) (*model.ExamOption, error) {
	option, err := s.Repo.FindOption(questionID, optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrOptionNotFound
		}
		return nil, err
	}

	if req.OptionText != nil {
		option.OptionText = *req.OptionText
	}
	if req.IsCorrect != nil {
		option.IsCorrect = *req.IsCorrect
	}

	if err := s.Repo.UpdateOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *ExamService) DeleteOption(questionID, optionID uint) error {
	option, err := s.Repo.FindOption(questionID, optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrOptionNotFound
		}
		return err
	}
	return s.Repo.DeleteOption(option)
}
