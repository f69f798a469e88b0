package service

import (
	"errors"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

var ErrTestNotFound = errors.New("test not found")

type CatalogService struct {
	Catalog *repository.TestCatalog
}

func NewCatalogService(catalog *repository.TestCatalog) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

func (s *CatalogService) ListActiveTests() []models.TestDefinition {
	return s.Catalog.ActiveTests()
}

func (s *CatalogService) ListTestsByType(tt models.TestType) []models.TestDefinition {
	return s.Catalog.TestsByType(tt)
}

func (s *CatalogService) GetTest(id string) (*models.TestDefinition, error) {
	def, ok := s.Catalog.FindByID(id)
	if !ok {
		return nil, ErrTestNotFound
	}
	return def, nil
}

func (s *CatalogService) GetTestConfig(testID string) (*models.TestConfig, bool) {
	return s.Catalog.ConfigFor(testID)
}
