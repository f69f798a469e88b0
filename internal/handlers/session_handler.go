package handlers

import (
	"context"
	"errors"
	"net/http"

	"exam-service/internal/models"
	"exam-service/internal/service"
	"exam-service/internal/session"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// StartSession builds a new session for the acting user.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req struct {
		TestID string `json:"test_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetHeader("X-User-ID")
	state, err := h.Service.Start(userID, req.TestID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrTestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
		case errors.Is(err, service.ErrSessionActive):
			c.JSON(http.StatusConflict, gin.H{"error": "A session is already active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"test":            state.Test,
		"total_questions": len(state.Questions),
		"time_remaining":  state.TimeRemaining,
		"start_time":      state.StartTime,
	})
}

// GetSession returns the live session as the client renders it: current
// question, its response, and the derived palette.
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	state, err := h.Service.Get(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"test":                   state.Test,
		"current_question":       state.Current(),
		"current_response":       state.CurrentResponse(),
		"current_question_index": state.CurrentIndex,
		"current_section_index":  state.SectionIndex,
		"time_remaining":         state.TimeRemaining,
		"palette":                state.Palette(),
	})
}

// SaveAnswer records a selection. A null selected_answer clears the slot.
func (h *SessionHandler) SaveAnswer(c *gin.Context) {
	var req struct {
		QuestionID       string           `json:"question_id" binding:"required"`
		SelectedAnswer   models.Selection `json:"selected_answer"`
		TimeSpentSeconds int              `json:"time_spent_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if err := h.Service.Answer(userID, req.QuestionID, req.SelectedAnswer); err != nil {
		respondSessionError(c, err)
		return
	}
	if req.TimeSpentSeconds > 0 {
		_ = h.Service.AddTimeSpent(userID, req.QuestionID, req.TimeSpentSeconds)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Answer saved"})
}

func (h *SessionHandler) MarkForReview(c *gin.Context) {
	var req struct {
		QuestionID string `json:"question_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if err := h.Service.ToggleMarkForReview(userID, req.QuestionID); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review mark toggled"})
}

func (h *SessionHandler) Navigate(c *gin.Context) {
	var req struct {
		QuestionIndex *int `json:"question_index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if err := h.Service.NavigateTo(userID, *req.QuestionIndex); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Moved to question", "question_index": *req.QuestionIndex})
}

func (h *SessionHandler) NavigateSection(c *gin.Context) {
	var req struct {
		SectionIndex *int `json:"section_index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if err := h.Service.NavigateToSection(userID, *req.SectionIndex); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Moved to section", "section_index": *req.SectionIndex})
}

// Tick records the countdown value reported by the client clock. Hitting
// zero does not submit; the driver must call submit explicitly.
func (h *SessionHandler) Tick(c *gin.Context) {
	var req struct {
		TimeRemainingSeconds *int `json:"time_remaining_seconds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if err := h.Service.Tick(userID, *req.TimeRemainingSeconds); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time updated"})
}

// SubmitSession scores the session and returns the attempt. Only the first
// submit for a session produces a result; later calls get 404.
func (h *SessionHandler) SubmitSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	attempt, err := h.Service.Submit(context.Background(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSession):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active session to submit"})
		case errors.Is(err, session.ErrEmptySession):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Session has no questions"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// AbandonSession discards the session without scoring.
func (h *SessionHandler) AbandonSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if err := h.Service.Abandon(userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active session to abandon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session abandoned"})
}

func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
	case errors.Is(err, session.ErrUnknownQuestion):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not in session"})
	case errors.Is(err, session.ErrInvalidNavigation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index out of range"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
