package service

import (
	"testing"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps the :memory: database alive and serializes
// transactions the way the tests expect.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newExamFixture(t *testing.T) (*ExamService, *AttemptService, *repository.AttemptRepository) {
	t.Helper()

	db := newTestDB(t)
	examRepo := repository.NewExamRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	return NewExamService(examRepo), NewAttemptService(examRepo, attemptRepo), attemptRepo
}

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func mustCreateExam(t *testing.T, svc *ExamService, req ExamCreateReq) *model.Exam {
	t.Helper()
	exam, err := svc.CreateExam(req)
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}
	return exam
}

// mustAddQuestion creates a question whose first option is the correct
// one.
func mustAddQuestion(t *testing.T, svc *ExamService, examID uint, text string, marks *float64, negative *float64) *QuestionDetail {
	t.Helper()
	q, err := svc.CreateQuestion(examID, QuestionCreateReq{
		QuestionText:  text,
		Marks:         marks,
		NegativeMarks: negative,
		Options: []OptionReq{
			{OptionText: "right", IsCorrect: true},
			{OptionText: "wrong a"},
			{OptionText: "wrong b"},
		},
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	return q
}

func correctOption(t *testing.T, q *QuestionDetail) uint {
	t.Helper()
	for _, o := range q.Options {
		if o.IsCorrect {
			return o.ID
		}
	}
	t.Fatalf("question %d has no correct option", q.ID)
	return 0
}

func wrongOption(t *testing.T, q *QuestionDetail) uint {
	t.Helper()
	for _, o := range q.Options {
		if !o.IsCorrect {
			return o.ID
		}
	}
	t.Fatalf("question %d has no incorrect option", q.ID)
	return 0
}
