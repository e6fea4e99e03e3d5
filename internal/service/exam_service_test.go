package service

import (
	"errors"
	"testing"

	"institute_backend/internal/util"
)

func TestExamCreateDefaultsAndUpdate(t *testing.T) {
	examSvc, _, _ := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "basics", DurationMinutes: 45})
	if !exam.IsActive {
		t.Fatal("new exam should default to active")
	}

	updated, err := examSvc.UpdateExam(exam.ID, ExamUpdateReq{
		Title:                  strPtr("basics v2"),
		IsActive:               boolPtr(false),
		NegativeMarkingEnabled: boolPtr(true),
		NegativeMarkValue:      floatPtr(0.5),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "basics v2" || updated.IsActive || !updated.NegativeMarkingEnabled {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.DurationMinutes != 45 {
		t.Fatalf("untouched field changed: %d", updated.DurationMinutes)
	}

	if _, err := examSvc.UpdateExam(9999, ExamUpdateReq{}); !errors.Is(err, util.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound, got %v", err)
	}
}

func TestExamCreatedInactiveStaysInactive(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{
		Title:           "draft",
		DurationMinutes: 30,
		IsActive:        boolPtr(false),
	})

	reloaded, err := examSvc.GetExam(exam.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.IsActive {
		t.Fatal("exam created inactive was stored as active")
	}

	available, err := attemptSvc.ListAvailable()
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(available) != 0 {
		t.Fatalf("inactive exam listed as available: %d", len(available))
	}

	if _, err := attemptSvc.Start(exam.ID, 1); !errors.Is(err, util.ErrExamNotFound) {
		t.Fatalf("start on inactive exam: expected ErrExamNotFound, got %v", err)
	}
}

func TestQuestionRequiresOptions(t *testing.T) {
	examSvc, _, _ := newExamFixture(t)
	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "quiz", DurationMinutes: 20})

	_, err := examSvc.CreateQuestion(exam.ID, QuestionCreateReq{QuestionText: "orphan"})
	if !errors.Is(err, util.ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired, got %v", err)
	}

	q, err := examSvc.CreateQuestion(exam.ID, QuestionCreateReq{
		QuestionText: "defaults",
		Options:      []OptionReq{{OptionText: "a", IsCorrect: true}, {OptionText: "b"}},
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if q.Marks != 1.0 {
		t.Fatalf("marks should default to 1, got %v", q.Marks)
	}
}

func TestQuestionKeepsExplicitZeroMarks(t *testing.T) {
	examSvc, _, _ := newExamFixture(t)
	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "quiz", DurationMinutes: 20})
	mustAddQuestion(t, examSvc, exam.ID, "unscored", floatPtr(0), nil)

	questions, err := examSvc.ListQuestions(exam.ID)
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if questions[0].Marks != 0 {
		t.Fatalf("explicit zero marks stored as %v", questions[0].Marks)
	}
}

func TestStaffQuestionViewKeepsCorrectness(t *testing.T) {
	examSvc, _, _ := newExamFixture(t)
	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "quiz", DurationMinutes: 20})
	mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

	questions, err := examSvc.ListQuestions(exam.ID)
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	correct := 0
	for _, o := range questions[0].Options {
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		t.Fatalf("staff view lost correctness flags: %d correct", correct)
	}
}

func TestDeleteExamCascades(t *testing.T) {
	examSvc, attemptSvc, attemptRepo := newExamFixture(t)
	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "doomed", DurationMinutes: 20})
	q := mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

	started, err := attemptSvc.Start(exam.ID, 7)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := attemptSvc.Submit(7, exam.ID, SubmitRequest{
		AttemptID: started.AttemptID,
		Answers:   []AnswerSubmission{{QuestionID: q.ID, OptionID: correctOption(t, q)}},
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := examSvc.DeleteExam(exam.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := examSvc.GetExam(exam.ID); !errors.Is(err, util.ErrExamNotFound) {
		t.Fatalf("exam still present: %v", err)
	}
	if _, err := examSvc.UpdateQuestion(q.ID, QuestionUpdateReq{}); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("question survived the cascade: %v", err)
	}
	if _, err := attemptRepo.FindByID(started.AttemptID); err == nil {
		t.Fatal("attempt survived the cascade")
	}
	answers, err := attemptRepo.ListAnswers(started.AttemptID)
	if err != nil {
		t.Fatalf("list answers: %v", err)
	}
	if len(answers) != 0 {
		t.Fatalf("answers survived the cascade: %d", len(answers))
	}
}

func TestOptionLifecycle(t *testing.T) {
	examSvc, _, _ := newExamFixture(t)
	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "quiz", DurationMinutes: 20})
	q := mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

	added, err := examSvc.AddOption(q.ID, OptionReq{OptionText: "extra"})
	if err != nil {
		t.Fatalf("add option: %v", err)
	}

	updated, err := examSvc.UpdateOption(q.ID, added.ID, OptionUpdateReq{
		OptionText: strPtr("extra v2"),
		IsCorrect:  boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update option: %v", err)
	}
	if updated.OptionText != "extra v2" || !updated.IsCorrect {
		t.Fatalf("option patch not applied: %+v", updated)
	}

	// The option belongs to q, so looking it up under another question
	// must fail.
	other := mustAddQuestion(t, examSvc, exam.ID, "q2", nil, nil)
	if _, err := examSvc.UpdateOption(other.ID, added.ID, OptionUpdateReq{}); !errors.Is(err, util.ErrOptionNotFound) {
		t.Fatalf("expected ErrOptionNotFound, got %v", err)
	}

	if err := examSvc.DeleteOption(q.ID, added.ID); err != nil {
		t.Fatalf("delete option: %v", err)
	}
	if _, err := examSvc.UpdateOption(q.ID, added.ID, OptionUpdateReq{}); !errors.Is(err, util.ErrOptionNotFound) {
		t.Fatalf("option survived delete: %v", err)
	}
}

func strPtr(s string) *string { return &s }
