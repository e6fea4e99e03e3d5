package service

import (
	"errors"
	"time"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"gorm.io/gorm"
)

// AttemptService runs the exam attempt lifecycle: list available exams,
// start (or resume) an attempt, score a submission, list past attempts.
type AttemptService struct {
	ExamRepo    *repository.ExamRepository
	AttemptRepo *repository.AttemptRepository

	// Now is the clock used for availability windows and timestamps.
	Now func() time.Time
}

func NewAttemptService(examRepo *repository.ExamRepository, attemptRepo *repository.AttemptRepository) *AttemptService {
	return &AttemptService{
		ExamRepo:    examRepo,
		AttemptRepo: attemptRepo,
		Now:         time.Now,
	}
}

// StudentOptionView never carries the stored correctness flag; it is
// forced false so an open attempt cannot leak answers.
type StudentOptionView struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
}

type StudentQuestionView struct {
	ID            uint                `json:"id"`
	QuestionText  string              `json:"question_text"`
	Marks         float64             `json:"marks"`
	NegativeMarks *float64            `json:"negative_marks"`
	Options       []StudentOptionView `json:"options"`
}

type StartResult struct {
	AttemptID uint                  `json:"attempt_id"`
	Exam      *model.Exam           `json:"exam"`
	Questions []StudentQuestionView `json:"questions"`
}

type AnswerSubmission struct {
	QuestionID uint `json:"question_id" binding:"required"`
	OptionID   uint `json:"option_id" binding:"required"`
}

type SubmitRequest struct {
	AttemptID uint               `json:"attempt_id" binding:"required"`
	Answers   []AnswerSubmission `json:"answers"`
}

type SubmitResult struct {
	AttemptID  uint                `json:"attempt_id"`
	TotalScore float64             `json:"total_score"`
	Status     model.AttemptStatus `json:"status"`
}

// ListAvailable returns active exams whose visibility window contains
// the current wall-clock time, newest first.
func (s *AttemptService) ListAvailable() ([]model.Exam, error) {
	return s.ExamRepo.ListAvailable(s.Now())
}

// Start creates an in_progress attempt for the (exam, student) pair, or
// returns the existing open one unchanged. A submitted attempt blocks
// any further start. The window is checked only at listing time; once a
// student holds an attempt id they may finish regardless of the window.
func (s *AttemptService) Start(examID, studentID uint) (*StartResult, error) {
	exam, err := s.ExamRepo.FindActiveByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}

	attempt, err := s.findOrCreateAttempt(examID, studentID)
	if err != nil {
		return nil, err
	}

	questions, err := s.assembleQuestions(examID)
	if err != nil {
		return nil, err
	}

	return &StartResult{
		AttemptID: attempt.ID,
		Exam:      exam,
		Questions: questions,
	}, nil
}

func (s *AttemptService) findOrCreateAttempt(examID, studentID uint) (*model.ExamAttempt, error) {
	attempt, err := s.AttemptRepo.FindByExamAndStudent(examID, studentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if attempt != nil {
		if attempt.Status == model.AttemptSubmitted {
			return nil, util.ErrExamAlreadySubmitted
		}
		return attempt, nil
	}

	attempt = &model.ExamAttempt{
		ExamID:    examID,
		StudentID: studentID,
		Status:    model.AttemptInProgress,
		StartedAt: s.Now(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		// A concurrent first start won the unique index race; adopt
		// the winner's attempt.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.AttemptRepo.FindByExamAndStudent(examID, studentID)
			if ferr != nil {
				return nil, ferr
			}
			if existing.Status == model.AttemptSubmitted {
				return nil, util.ErrExamAlreadySubmitted
			}
			return existing, nil
		}
		return nil, err
	}

	return attempt, nil
}

func (s *AttemptService) assembleQuestions(examID uint) ([]StudentQuestionView, error) {
	questions, err := s.ExamRepo.ListQuestions(examID)
	if err != nil {
		return nil, err
	}
	options, err := s.ExamRepo.ListOptionsForExam(examID)
	if err != nil {
		return nil, err
	}

	optionsByQuestion := make(map[uint][]StudentOptionView, len(questions))
	for _, o := range options {
		optionsByQuestion[o.QuestionID] = append(optionsByQuestion[o.QuestionID], StudentOptionView{
			ID:         o.ID,
			OptionText: o.OptionText,
			IsCorrect:  false,
		})
	}

	views := make([]StudentQuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, StudentQuestionView{
			ID:            q.ID,
			QuestionText:  q.QuestionText,
			Marks:         q.Marks,
			NegativeMarks: q.NegativeMarks,
			Options:       optionsByQuestion[q.ID],
		})
	}
	return views, nil
}

// Submit scores an in_progress attempt and closes it. Unanswered
// questions and answers referencing an option that does not belong to
// the question are skipped without failing the submission. The terminal
// transition happens as a single atomic claim, so of two concurrent
// submits exactly one scores and the other fails with
// ErrExamAlreadySubmitted.
func (s *AttemptService) Submit(studentID, examID uint, req SubmitRequest) (*SubmitResult, error) {
	attempt, err := s.AttemptRepo.FindByID(req.AttemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.ExamID != examID || attempt.StudentID != studentID {
		return nil, util.ErrAttemptNotFound
	}
	if attempt.Status == model.AttemptSubmitted {
		return nil, util.ErrExamAlreadySubmitted
	}

	exam, err := s.ExamRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}

	// Last write wins for duplicate submissions of the same question.
	selected := make(map[uint]uint, len(req.Answers))
	for _, a := range req.Answers {
		selected[a.QuestionID] = a.OptionID
	}

	questions, err := s.ExamRepo.ListQuestions(examID)
	if err != nil {
		return nil, err
	}
	options, err := s.ExamRepo.ListOptionsForExam(examID)
	if err != nil {
		return nil, err
	}
	optionsByID := make(map[uint]*model.ExamOption, len(options))
	for i := range options {
		optionsByID[options[i].ID] = &options[i]
	}

	totalScore := 0.0
	answers := make([]model.ExamAnswer, 0, len(questions))

	for _, q := range questions {
		optionID, answered := selected[q.ID]
		if !answered || optionID == 0 {
			continue
		}
		option, ok := optionsByID[optionID]
		if !ok || option.QuestionID != q.ID {
			// Stale or mismatched option reference: treated as no
			// valid answer, not a submission failure.
			continue
		}

		marksAwarded := q.Marks
		if !option.IsCorrect {
			marksAwarded = -negativeValue(exam, &q)
		}
		totalScore += marksAwarded

		answers = append(answers, model.ExamAnswer{
			AttemptID:    attempt.ID,
			QuestionID:   q.ID,
			OptionID:     option.ID,
			IsCorrect:    option.IsCorrect,
			MarksAwarded: marksAwarded,
		})
	}

	claimed, err := s.AttemptRepo.Finalize(attempt.ID, s.Now(), totalScore, answers)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, util.ErrExamAlreadySubmitted
	}

	return &SubmitResult{
		AttemptID:  attempt.ID,
		TotalScore: totalScore,
		Status:     model.AttemptSubmitted,
	}, nil
}

// ListAttempts returns the student's attempts, newest first.
func (s *AttemptService) ListAttempts(studentID uint) ([]model.ExamAttempt, error) {
	return s.AttemptRepo.ListByStudent(studentID)
}

// negativeValue resolves the penalty for an incorrect answer: the
// question's override, else the exam default, else 0. Always 0 when the
// exam has negative marking disabled.
func negativeValue(exam *model.Exam, q *model.ExamQuestion) float64 {
	if !exam.NegativeMarkingEnabled {
		return 0
	}
	if q.NegativeMarks != nil {
		return *q.NegativeMarks
	}
	if exam.NegativeMarkValue != nil {
		return *exam.NegativeMarkValue
	}
	return 0
}
