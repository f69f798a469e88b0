package handlers

import (
	"net/http"

	"exam-service/internal/models"
	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	Service *service.CatalogService
}

func NewTestHandler(s *service.CatalogService) *TestHandler {
	return &TestHandler{Service: s}
}

// ListTests returns active tests, optionally filtered by pattern type.
func (h *TestHandler) ListTests(c *gin.Context) {
	if tt := c.Query("type"); tt != "" {
		c.JSON(http.StatusOK, h.Service.ListTestsByType(models.TestType(tt)))
		return
	}
	c.JSON(http.StatusOK, h.Service.ListActiveTests())
}

func (h *TestHandler) GetTest(c *gin.Context) {
	test, err := h.Service.GetTest(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *TestHandler) GetTestConfig(c *gin.Context) {
	cfg, ok := h.Service.GetTestConfig(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Test has no config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
