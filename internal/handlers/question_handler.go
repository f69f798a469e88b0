package handlers

import (
	"net/http"
	"strconv"

	"exam-service/internal/models"
	"exam-service/internal/repository"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Repo *repository.QuestionRepository
}

func NewQuestionHandler(repo *repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{Repo: repo}
}

// SampleQuestions draws from the bank with the same filter contract the
// session builder uses. Repeating a query parameter widens that constraint.
func (h *QuestionHandler) SampleQuestions(c *gin.Context) {
	filter := repository.Filter{
		Subjects: c.QueryArray("subject"),
		Topics:   c.QueryArray("topic"),
		Tag:      c.Query("tag"),
	}
	for _, d := range c.QueryArray("difficulty") {
		filter.Difficulties = append(filter.Difficulties, models.Difficulty(d))
	}
	if raw := c.Query("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a non-negative integer"})
			return
		}
		filter.Count = count
	}
	c.JSON(http.StatusOK, h.Repo.Sample(filter))
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	q, ok := h.Repo.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuestionHandler) ListSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.Repo.Subjects())
}

func (h *QuestionHandler) ListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Repo.TopicsBySubject(c.Param("subject")))
}
