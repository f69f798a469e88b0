package session

import (
	"time"

	"exam-service/internal/models"
)

// State is the live, mutable state of one in-progress attempt. It is owned
// by exactly one user's session and is only touched through the methods
// below; the service layer serializes access across requests.
type State struct {
	UserID    string                 `json:"user_id"`
	Test      *models.TestDefinition `json:"test"`
	Questions []models.Question      `json:"questions"`
	// SectionIDs tags each question with its owning section, assigned at
	// build time. Scoring uses this tag instead of re-deriving ownership
	// from subject names, which is ambiguous when two sections share a
	// subject (NEET Botany/Zoology are both Biology).
	SectionIDs    []string              `json:"section_ids"`
	Responses     []models.UserResponse `json:"responses"`
	CurrentIndex  int                   `json:"current_question_index"`
	SectionIndex  int                   `json:"current_section_index"`
	StartTime     time.Time             `json:"start_time"`
	TimeRemaining int                   `json:"time_remaining_seconds"`

	index map[string]int
}

// Answer records a selection for a question and marks it visited. A null
// (unanswered) selection is an explicit clear, not an error.
func (s *State) Answer(questionID string, selected models.Selection) error {
	i, ok := s.index[questionID]
	if !ok {
		return ErrUnknownQuestion
	}
	s.Responses[i].Selected = selected
	s.Responses[i].Visited = true
	return nil
}

// ToggleMarkForReview flips the review flag and marks the question visited.
func (s *State) ToggleMarkForReview(questionID string) error {
	i, ok := s.index[questionID]
	if !ok {
		return ErrUnknownQuestion
	}
	s.Responses[i].MarkedForReview = !s.Responses[i].MarkedForReview
	s.Responses[i].Visited = true
	return nil
}

// NavigateTo repositions the session on a question and marks it visited.
// Visiting is independent of answering; an out-of-range index leaves the
// state unchanged.
func (s *State) NavigateTo(questionIndex int) error {
	if questionIndex < 0 || questionIndex >= len(s.Questions) {
		return ErrInvalidNavigation
	}
	s.CurrentIndex = questionIndex
	s.Responses[questionIndex].Visited = true
	return nil
}

// NavigateToSection jumps to the first question of a section. The absolute
// index is the sum of the preceding sections' question counts, which the
// builder guarantees matches the materialized sequence.
func (s *State) NavigateToSection(sectionIndex int) error {
	if sectionIndex < 0 || sectionIndex >= len(s.Test.Sections) {
		return ErrInvalidNavigation
	}
	questionIndex := 0
	for i := 0; i < sectionIndex; i++ {
		questionIndex += s.Test.Sections[i].QuestionCount
	}
	if questionIndex >= len(s.Questions) {
		return ErrInvalidNavigation
	}
	s.SectionIndex = sectionIndex
	s.CurrentIndex = questionIndex
	s.Responses[questionIndex].Visited = true
	return nil
}

// Tick records the remaining time reported by the external clock. Values
// above the current remaining time are ignored so the countdown is
// monotonically non-increasing; negative values clamp to zero. Reaching
// zero is a signal to the driver, not an automatic submission.
func (s *State) Tick(remainingSeconds int) {
	if remainingSeconds < 0 {
		remainingSeconds = 0
	}
	if remainingSeconds > s.TimeRemaining {
		return
	}
	s.TimeRemaining = remainingSeconds
}

// AddTimeSpent accrues viewing time on a question. Precision is advisory.
func (s *State) AddTimeSpent(questionID string, seconds int) error {
	i, ok := s.index[questionID]
	if !ok {
		return ErrUnknownQuestion
	}
	if seconds > 0 {
		s.Responses[i].TimeSpentSeconds += seconds
	}
	return nil
}

func (s *State) Current() *models.Question {
	if len(s.Questions) == 0 {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

func (s *State) CurrentResponse() *models.UserResponse {
	if len(s.Responses) == 0 {
		return nil
	}
	return &s.Responses[s.CurrentIndex]
}

// Palette derives the four-state palette for every question in order.
func (s *State) Palette() []models.PaletteStatus {
	palette := make([]models.PaletteStatus, len(s.Responses))
	for i, r := range s.Responses {
		palette[i] = r.PaletteStatus()
	}
	return palette
}
