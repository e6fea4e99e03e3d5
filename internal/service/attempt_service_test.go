package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"institute_backend/internal/model"
	"institute_backend/internal/util"
)

func TestListAvailableRespectsWindow(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	attemptSvc.Now = func() time.Time { return now }

	hourAgo := now.Add(-time.Hour)
	hourAhead := now.Add(time.Hour)

	open := mustCreateExam(t, examSvc, ExamCreateReq{Title: "open", DurationMinutes: 30})
	windowed := mustCreateExam(t, examSvc, ExamCreateReq{
		Title: "windowed", DurationMinutes: 30,
		StartAt: &hourAgo, EndAt: &hourAhead,
	})
	mustCreateExam(t, examSvc, ExamCreateReq{
		Title: "not started", DurationMinutes: 30, StartAt: &hourAhead,
	})
	mustCreateExam(t, examSvc, ExamCreateReq{
		Title: "ended", DurationMinutes: 30, EndAt: &hourAgo,
	})
	mustCreateExam(t, examSvc, ExamCreateReq{
		Title: "inactive", DurationMinutes: 30, IsActive: boolPtr(false),
	})

	exams, err := attemptSvc.ListAvailable()
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(exams) != 2 {
		t.Fatalf("expected 2 available exams, got %d", len(exams))
	}
	// Newest first.
	if exams[0].ID != windowed.ID || exams[1].ID != open.ID {
		t.Fatalf("unexpected order: got %d, %d", exams[0].ID, exams[1].ID)
	}
}

func TestStartIsIdempotentAndHidesAnswers(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "quiz", DurationMinutes: 20})
	mustAddQuestion(t, examSvc, exam.ID, "q1", nil, nil)
	mustAddQuestion(t, examSvc, exam.ID, "q2", nil, nil)

	first, err := attemptSvc.Start(exam.ID, 1)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	if len(first.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(first.Questions))
	}
	for _, q := range first.Questions {
		if len(q.Options) != 3 {
			t.Fatalf("question %d: expected 3 options, got %d", q.ID, len(q.Options))
		}
		for _, o := range q.Options {
			if o.IsCorrect {
				t.Fatalf("option %d leaks correctness to the student", o.ID)
			}
		}
	}

	second, err := attemptSvc.Start(exam.ID, 1)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if second.AttemptID != first.AttemptID {
		t.Fatalf("resume created a new attempt: %d != %d", second.AttemptID, first.AttemptID)
	}

	// A different student gets their own attempt.
	other, err := attemptSvc.Start(exam.ID, 2)
	if err != nil {
		t.Fatalf("other student start: %v", err)
	}
	if other.AttemptID == first.AttemptID {
		t.Fatal("students share an attempt")
	}
}

func TestStartRejectedAfterSubmit(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "quiz", DurationMinutes: 20})
	mustAddQuestion(t, examSvc, exam.ID, "q1", nil, nil)

	started, err := attemptSvc.Start(exam.ID, 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := attemptSvc.Submit(1, exam.ID, SubmitRequest{AttemptID: started.AttemptID}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := attemptSvc.Start(exam.ID, 1); !errors.Is(err, util.ErrExamAlreadySubmitted) {
		t.Fatalf("expected ErrExamAlreadySubmitted, got %v", err)
	}
}

func TestStartInactiveExam(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{
		Title: "hidden", DurationMinutes: 20, IsActive: boolPtr(false),
	})

	if _, err := attemptSvc.Start(exam.ID, 1); !errors.Is(err, util.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound, got %v", err)
	}
	if _, err := attemptSvc.Start(9999, 1); !errors.Is(err, util.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound for missing exam, got %v", err)
	}
}

func TestSubmitScoringWithNegativeMarking(t *testing.T) {
	examSvc, attemptSvc, attemptRepo := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{
		Title: "scored", DurationMinutes: 30,
		NegativeMarkingEnabled: true,
		NegativeMarkValue:      floatPtr(1.0),
	})
	q1 := mustAddQuestion(t, examSvc, exam.ID, "q1", floatPtr(2.0), nil)
	q2 := mustAddQuestion(t, examSvc, exam.ID, "q2", nil, floatPtr(0.5))
	q3 := mustAddQuestion(t, examSvc, exam.ID, "q3", nil, nil)
	q4 := mustAddQuestion(t, examSvc, exam.ID, "q4", nil, nil)

	started, err := attemptSvc.Start(exam.ID, 7)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	result, err := attemptSvc.Submit(7, exam.ID, SubmitRequest{
		AttemptID: started.AttemptID,
		Answers: []AnswerSubmission{
			{QuestionID: q1.ID, OptionID: correctOption(t, q1)}, // +2.0
			{QuestionID: q2.ID, OptionID: wrongOption(t, q2)},   // -0.5 question override
			// q3 unanswered: skipped
			{QuestionID: q4.ID, OptionID: 99999},                // stale option: skipped
			{QuestionID: q3.ID, OptionID: correctOption(t, q1)}, // option of another question: skipped
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.TotalScore != 1.5 {
		t.Fatalf("expected total 1.5, got %v", result.TotalScore)
	}
	if result.Status != model.AttemptSubmitted {
		t.Fatalf("expected submitted status, got %s", result.Status)
	}

	answers, err := attemptRepo.ListAnswers(started.AttemptID)
	if err != nil {
		t.Fatalf("list answers: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("expected 2 recorded answers, got %d", len(answers))
	}
	if answers[0].MarksAwarded != 2.0 || !answers[0].IsCorrect {
		t.Fatalf("q1 answer mis-scored: %+v", answers[0])
	}
	if answers[1].MarksAwarded != -0.5 || answers[1].IsCorrect {
		t.Fatalf("q2 answer mis-scored: %+v", answers[1])
	}

	attempt, err := attemptRepo.FindByID(started.AttemptID)
	if err != nil {
		t.Fatalf("find attempt: %v", err)
	}
	if attempt.Status != model.AttemptSubmitted || attempt.SubmittedAt == nil {
		t.Fatalf("attempt not finalized: %+v", attempt)
	}
	if attempt.TotalScore == nil || *attempt.TotalScore != 1.5 {
		t.Fatalf("stored score mismatch: %+v", attempt.TotalScore)
	}
}

func TestSubmitNegativeMarkingFallbacks(t *testing.T) {
	t.Run("disabled means zero penalty", func(t *testing.T) {
		examSvc, attemptSvc, _ := newExamFixture(t)
		exam := mustCreateExam(t, examSvc, ExamCreateReq{
			Title: "no penalty", DurationMinutes: 30,
			NegativeMarkValue: floatPtr(2.0), // ignored while disabled
		})
		q := mustAddQuestion(t, examSvc, exam.ID, "q", nil, floatPtr(0.5))

		started, _ := attemptSvc.Start(exam.ID, 1)
		result, err := attemptSvc.Submit(1, exam.ID, SubmitRequest{
			AttemptID: started.AttemptID,
			Answers:   []AnswerSubmission{{QuestionID: q.ID, OptionID: wrongOption(t, q)}},
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if result.TotalScore != 0 {
			t.Fatalf("expected 0, got %v", result.TotalScore)
		}
	})

	t.Run("exam default applies without question override", func(t *testing.T) {
		examSvc, attemptSvc, _ := newExamFixture(t)
		exam := mustCreateExam(t, examSvc, ExamCreateReq{
			Title: "default penalty", DurationMinutes: 30,
			NegativeMarkingEnabled: true,
			NegativeMarkValue:      floatPtr(0.25),
		})
		q := mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

		started, _ := attemptSvc.Start(exam.ID, 1)
		result, err := attemptSvc.Submit(1, exam.ID, SubmitRequest{
			AttemptID: started.AttemptID,
			Answers:   []AnswerSubmission{{QuestionID: q.ID, OptionID: wrongOption(t, q)}},
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if result.TotalScore != -0.25 {
			t.Fatalf("expected -0.25, got %v", result.TotalScore)
		}
	})

	t.Run("enabled with no value anywhere means zero", func(t *testing.T) {
		examSvc, attemptSvc, _ := newExamFixture(t)
		exam := mustCreateExam(t, examSvc, ExamCreateReq{
			Title: "bare", DurationMinutes: 30,
			NegativeMarkingEnabled: true,
		})
		q := mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

		started, _ := attemptSvc.Start(exam.ID, 1)
		result, err := attemptSvc.Submit(1, exam.ID, SubmitRequest{
			AttemptID: started.AttemptID,
			Answers:   []AnswerSubmission{{QuestionID: q.ID, OptionID: wrongOption(t, q)}},
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if result.TotalScore != 0 {
			t.Fatalf("expected 0, got %v", result.TotalScore)
		}
	})
}

func TestSubmitLastAnswerWins(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{
		Title: "dupes", DurationMinutes: 30,
		NegativeMarkingEnabled: true,
		NegativeMarkValue:      floatPtr(1.0),
	})
	q := mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

	started, _ := attemptSvc.Start(exam.ID, 1)
	result, err := attemptSvc.Submit(1, exam.ID, SubmitRequest{
		AttemptID: started.AttemptID,
		Answers: []AnswerSubmission{
			{QuestionID: q.ID, OptionID: wrongOption(t, q)},
			{QuestionID: q.ID, OptionID: correctOption(t, q)},
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.TotalScore != 1.0 {
		t.Fatalf("last answer should win: expected 1.0, got %v", result.TotalScore)
	}
}

func TestSubmitOwnershipChecks(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "quiz", DurationMinutes: 20})
	other := mustCreateExam(t, examSvc, ExamCreateReq{Title: "other", DurationMinutes: 20})
	mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

	started, _ := attemptSvc.Start(exam.ID, 1)

	if _, err := attemptSvc.Submit(2, exam.ID, SubmitRequest{AttemptID: started.AttemptID}); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("foreign student: expected ErrAttemptNotFound, got %v", err)
	}
	if _, err := attemptSvc.Submit(1, other.ID, SubmitRequest{AttemptID: started.AttemptID}); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("wrong exam: expected ErrAttemptNotFound, got %v", err)
	}
	if _, err := attemptSvc.Submit(1, exam.ID, SubmitRequest{AttemptID: 9999}); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("missing attempt: expected ErrAttemptNotFound, got %v", err)
	}
}

func TestSubmitTwiceFails(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "quiz", DurationMinutes: 20})
	mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

	started, _ := attemptSvc.Start(exam.ID, 1)
	if _, err := attemptSvc.Submit(1, exam.ID, SubmitRequest{AttemptID: started.AttemptID}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := attemptSvc.Submit(1, exam.ID, SubmitRequest{AttemptID: started.AttemptID}); !errors.Is(err, util.ErrExamAlreadySubmitted) {
		t.Fatalf("expected ErrExamAlreadySubmitted, got %v", err)
	}
}

func TestConcurrentSubmitsScoreOnce(t *testing.T) {
	examSvc, attemptSvc, attemptRepo := newExamFixture(t)

	exam := mustCreateExam(t, examSvc, ExamCreateReq{Title: "race", DurationMinutes: 20})
	q := mustAddQuestion(t, examSvc, exam.ID, "q", nil, nil)

	started, err := attemptSvc.Start(exam.ID, 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	req := SubmitRequest{
		AttemptID: started.AttemptID,
		Answers:   []AnswerSubmission{{QuestionID: q.ID, OptionID: correctOption(t, q)}},
	}

	const submitters = 4
	errs := make([]error, submitters)
	var wg sync.WaitGroup
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = attemptSvc.Submit(1, exam.ID, req)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, util.ErrExamAlreadySubmitted):
		default:
			t.Fatalf("unexpected submit error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful submit, got %d", successes)
	}

	answers, err := attemptRepo.ListAnswers(started.AttemptID)
	if err != nil {
		t.Fatalf("list answers: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("expected a single scoring pass, found %d answer rows", len(answers))
	}
}

func TestListAttemptsNewestFirst(t *testing.T) {
	examSvc, attemptSvc, _ := newExamFixture(t)

	first := mustCreateExam(t, examSvc, ExamCreateReq{Title: "first", DurationMinutes: 20})
	second := mustCreateExam(t, examSvc, ExamCreateReq{Title: "second", DurationMinutes: 20})
	mustAddQuestion(t, examSvc, first.ID, "q", nil, nil)
	mustAddQuestion(t, examSvc, second.ID, "q", nil, nil)

	a1, _ := attemptSvc.Start(first.ID, 1)
	a2, _ := attemptSvc.Start(second.ID, 1)
	attemptSvc.Start(first.ID, 2) // another student, filtered out

	attempts, err := attemptSvc.ListAttempts(1)
	if err != nil {
		t.Fatalf("ListAttempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != a2.AttemptID || attempts[1].ID != a1.AttemptID {
		t.Fatalf("expected newest first, got %d then %d", attempts[0].ID, attempts[1].ID)
	}
}
