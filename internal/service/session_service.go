package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/session"
)

var (
	// ErrSessionActive is returned when a user starts a test while another
	// session of theirs is live. The existing session is kept; it is never
	// auto-abandoned.
	ErrSessionActive = errors.New("a session is already active for this user")
	// ErrNoActiveSession is returned by any session operation when the user
	// has no live session, including a second submit after the first one
	// cleared it. Submission is first-wins.
	ErrNoActiveSession = errors.New("no active session for this user")
)

// SessionService owns the live sessions, at most one per user. Each user's
// state is isolated; mutations on one session are invisible to every other.
// The mutex only guards the session map and the per-call state access,
// matching the single-logical-thread model of the engine.
type SessionService struct {
	mu       sync.Mutex
	active   map[string]*session.State
	builder  *session.Builder
	scorer   *session.Scorer
	attempts repository.AttemptStore
}

func NewSessionService(builder *session.Builder, attempts repository.AttemptStore) *SessionService {
	return &SessionService{
		active:   make(map[string]*session.State),
		builder:  builder,
		scorer:   session.NewScorer(),
		attempts: attempts,
	}
}

// Start builds and registers a new session for the user.
func (s *SessionService) Start(userID, testID string) (*session.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, live := s.active[userID]; live {
		return nil, ErrSessionActive
	}
	state, err := s.builder.Build(userID, testID)
	if err != nil {
		return nil, err
	}
	s.active[userID] = state
	return state, nil
}

func (s *SessionService) Get(userID string) (*session.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, live := s.active[userID]
	if !live {
		return nil, ErrNoActiveSession
	}
	return state, nil
}

func (s *SessionService) Answer(userID, questionID string, selected models.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, live := s.active[userID]
	if !live {
		return ErrNoActiveSession
	}
	return state.Answer(questionID, selected)
}

func (s *SessionService) ToggleMarkForReview(userID, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, live := s.active[userID]
	if !live {
		return ErrNoActiveSession
	}
	return state.ToggleMarkForReview(questionID)
}

func (s *SessionService) NavigateTo(userID string, questionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, live := s.active[userID]
	if !live {
		return ErrNoActiveSession
	}
	return state.NavigateTo(questionIndex)
}

func (s *SessionService) NavigateToSection(userID string, sectionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, live := s.active[userID]
	if !live {
		return ErrNoActiveSession
	}
	return state.NavigateToSection(sectionIndex)
}

func (s *SessionService) AddTimeSpent(userID, questionID string, seconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, live := s.active[userID]
	if !live {
		return ErrNoActiveSession
	}
	return state.AddTimeSpent(questionID, seconds)
}

func (s *SessionService) Tick(userID string, remainingSeconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, live := s.active[userID]
	if !live {
		return ErrNoActiveSession
	}
	state.Tick(remainingSeconds)
	return nil
}

// Submit scores the user's session, clears it, and appends the attempt to
// history. The session is removed before the append so a concurrent second
// submit observes ErrNoActiveSession rather than a double-scored result.
func (s *SessionService) Submit(ctx context.Context, userID string) (*models.TestAttempt, error) {
	s.mu.Lock()
	state, live := s.active[userID]
	if !live {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	attempt, err := s.scorer.Score(state)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	delete(s.active, userID)
	s.mu.Unlock()

	if err := s.attempts.Append(ctx, attempt); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	return attempt, nil
}

// Abandon discards the session without scoring. No attempt is recorded.
func (s *SessionService) Abandon(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, live := s.active[userID]; !live {
		return ErrNoActiveSession
	}
	delete(s.active, userID)
	return nil
}
