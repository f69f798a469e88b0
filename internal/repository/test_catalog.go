package repository

import "exam-service/internal/models"

// TestCatalog is the read-only collection of test definitions and their
// optional generation configs, keyed by test id.
type TestCatalog struct {
	tests   []models.TestDefinition
	configs map[string]models.TestConfig
}

func NewTestCatalog(tests []models.TestDefinition, configs []models.TestConfig) *TestCatalog {
	byTest := make(map[string]models.TestConfig, len(configs))
	for _, c := range configs {
		byTest[c.TestID] = c
	}
	return &TestCatalog{tests: tests, configs: byTest}
}

func (c *TestCatalog) FindByID(id string) (*models.TestDefinition, bool) {
	for i := range c.tests {
		if c.tests[i].ID == id {
			t := c.tests[i]
			return &t, true
		}
	}
	return nil, false
}

// ConfigFor returns the generation config for a test, if one exists.
func (c *TestCatalog) ConfigFor(testID string) (*models.TestConfig, bool) {
	cfg, ok := c.configs[testID]
	if !ok {
		return nil, false
	}
	return &cfg, true
}

func (c *TestCatalog) ActiveTests() []models.TestDefinition {
	active := make([]models.TestDefinition, 0, len(c.tests))
	for _, t := range c.tests {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active
}

func (c *TestCatalog) TestsByType(tt models.TestType) []models.TestDefinition {
	matched := make([]models.TestDefinition, 0)
	for _, t := range c.tests {
		if t.Type == tt {
			matched = append(matched, t)
		}
	}
	return matched
}
