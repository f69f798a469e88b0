package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/session"
)

func newTestSessionService() *SessionService {
	questions := make([]models.Question, 10)
	for i := range questions {
		questions[i] = models.Question{
			ID:            fmt.Sprintf("q-%d", i),
			Prompt:        fmt.Sprintf("question %d", i),
			Options:       []string{"A", "B", "C", "D"},
			Correct:       models.SingleChoice(i % 4),
			Subject:       "Mathematics",
			Topic:         "Algebra",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
		}
	}
	tests := []models.TestDefinition{{
		ID:              "math-1",
		Name:            "Math Practice",
		Type:            models.TestJEE,
		DurationMinutes: 30,
		TotalMarks:      40,
		TotalQuestions:  10,
		Sections: []models.TestSection{
			{ID: "sec-math", Name: "Mathematics", Subject: "Mathematics", QuestionCount: 10, Marks: 40},
		},
		NegativeMarking: true,
	}}
	catalog := repository.NewTestCatalog(tests, nil)
	bank := repository.NewQuestionRepository(questions)
	builder := session.NewBuilder(catalog, bank)
	return NewSessionService(builder, repository.NewMemoryAttemptStore(nil))
}

func TestStartRejectsSecondSession(t *testing.T) {
	svc := newTestSessionService()

	if _, err := svc.Start("user-1", "math-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.Start("user-1", "math-1"); !errors.Is(err, ErrSessionActive) {
		t.Errorf("Expected ErrSessionActive, got %v", err)
	}

	// A different user is unaffected.
	if _, err := svc.Start("user-2", "math-1"); err != nil {
		t.Errorf("Unexpected error for second user: %v", err)
	}
}

func TestStartUnknownTest(t *testing.T) {
	svc := newTestSessionService()
	if _, err := svc.Start("user-1", "missing"); !errors.Is(err, session.ErrTestNotFound) {
		t.Errorf("Expected ErrTestNotFound, got %v", err)
	}
	// The failed start must not leave a phantom session behind.
	if _, err := svc.Get("user-1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Expected ErrNoActiveSession, got %v", err)
	}
}

func TestOperationsRequireActiveSession(t *testing.T) {
	svc := newTestSessionService()

	if err := svc.Answer("user-1", "q-1", models.SingleChoice(0)); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Expected ErrNoActiveSession from Answer, got %v", err)
	}
	if err := svc.NavigateTo("user-1", 0); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Expected ErrNoActiveSession from NavigateTo, got %v", err)
	}
	if err := svc.Tick("user-1", 100); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Expected ErrNoActiveSession from Tick, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), "user-1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Expected ErrNoActiveSession from Submit, got %v", err)
	}
}

func TestSubmitIsFirstWins(t *testing.T) {
	svc := newTestSessionService()
	state, err := svc.Start("user-1", "math-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := svc.Answer("user-1", state.Questions[0].ID, state.Questions[0].Correct); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	attempt, err := svc.Submit(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if attempt.CorrectAnswers != 1 {
		t.Errorf("Expected 1 correct answer, got %d", attempt.CorrectAnswers)
	}

	// The session is gone; a second submit cannot double-score.
	if _, err := svc.Submit(context.Background(), "user-1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Expected ErrNoActiveSession on resubmit, got %v", err)
	}
}

func TestSubmitAppendsToHistory(t *testing.T) {
	svc := newTestSessionService()
	if _, err := svc.Start("user-1", "math-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.Submit(context.Background(), "user-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	attempts, err := svc.attempts.FindByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("Expected 1 stored attempt, got %d", len(attempts))
	}
	if attempts[0].TestID != "math-1" || attempts[0].Status != models.AttemptCompleted {
		t.Errorf("Unexpected stored attempt: %+v", attempts[0])
	}

	// The user can start the same test again.
	if _, err := svc.Start("user-1", "math-1"); err != nil {
		t.Errorf("Unexpected error starting again: %v", err)
	}
}

func TestAbandonDiscardsWithoutScoring(t *testing.T) {
	svc := newTestSessionService()
	if _, err := svc.Start("user-1", "math-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := svc.Abandon("user-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	attempts, err := svc.attempts.FindByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("Expected no stored attempts after abandon, got %d", len(attempts))
	}

	if err := svc.Abandon("user-1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Expected ErrNoActiveSession, got %v", err)
	}
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	svc := newTestSessionService()
	s1, err := svc.Start("user-1", "math-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.Start("user-2", "math-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := svc.Answer("user-1", s1.Questions[0].ID, models.SingleChoice(1)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s2, err := svc.Get("user-2")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, r := range s2.Responses {
		if r.Selected.IsAnswered() {
			t.Fatal("Expected user-2's session to be untouched by user-1's answer")
		}
	}
}
