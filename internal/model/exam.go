package model

import "time"

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptSubmitted  AttemptStatus = "submitted"
)

// Exam is an online test visible to students while active and inside the
// optional [StartAt, EndAt] window.
// swagger:model Exam
type Exam struct {
	BaseModel
	Title                  string     `gorm:"size:200;not null" json:"title"`
	Description            string     `gorm:"type:text" json:"description"`
	DurationMinutes        int        `gorm:"not null" json:"duration_minutes"`
	TotalMarks             *float64   `json:"total_marks"`
	PassMarks              *float64   `json:"pass_marks"`
	NegativeMarkingEnabled bool       `gorm:"default:false" json:"negative_marking_enabled"`
	NegativeMarkValue      *float64   `json:"negative_mark_value"`
	// Creates set this explicitly; a gorm default tag would drop an
	// explicit false on insert.
	IsActive               bool       `json:"is_active"`
	StartAt                *time.Time `json:"start_at"`
	EndAt                  *time.Time `json:"end_at"`
}

func (Exam) TableName() string {
	return "exams"
}

// swagger:model ExamQuestion
type ExamQuestion struct {
	BaseModel
	ExamID        uint     `gorm:"index;not null" json:"exam_id"`
	QuestionText  string   `gorm:"type:text;not null" json:"question_text"`
	Marks         float64  `json:"marks"`
	NegativeMarks *float64 `json:"negative_marks"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}

// swagger:model ExamOption
type ExamOption struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	OptionText string `gorm:"type:text;not null" json:"option_text"`
	IsCorrect  bool   `gorm:"default:false" json:"is_correct"`
}

func (ExamOption) TableName() string {
	return "exam_options"
}

// ExamAttempt tracks one student's run through one exam. A submitted
// attempt blocks any further start for the same pair, so the composite
// unique index doubles as the one-open-attempt guarantee.
// swagger:model ExamAttempt
type ExamAttempt struct {
	BaseModel
	ExamID      uint          `gorm:"not null;uniqueIndex:idx_attempt_exam_student" json:"exam_id"`
	StudentID   uint          `gorm:"not null;uniqueIndex:idx_attempt_exam_student;index" json:"student_id"`
	Status      AttemptStatus `gorm:"type:varchar(30);default:'in_progress'" json:"status"`
	StartedAt   time.Time     `json:"started_at"`
	SubmittedAt *time.Time    `json:"submitted_at"`
	TotalScore  *float64      `json:"total_score"`
}

func (ExamAttempt) TableName() string {
	return "exam_attempts"
}

// ExamAnswer is written once during submit and never updated.
// swagger:model ExamAnswer
type ExamAnswer struct {
	BaseModel
	AttemptID    uint    `gorm:"index;not null" json:"attempt_id"`
	QuestionID   uint    `gorm:"index;not null" json:"question_id"`
	OptionID     uint    `gorm:"not null" json:"option_id"`
	IsCorrect    bool    `gorm:"default:false" json:"is_correct"`
	MarksAwarded float64 `json:"marks_awarded"`
}

func (ExamAnswer) TableName() string {
	return "exam_answers"
}
