package models

type TestType string

const (
	TestJEE     TestType = "JEE"
	TestEAMCET  TestType = "EAMCET"
	TestNEET    TestType = "NEET"
	TestSSC     TestType = "SSC"
	TestBanking TestType = "BANKING"
	TestUPSC    TestType = "UPSC"
	TestGATE    TestType = "GATE"
	TestCustom  TestType = "CUSTOM"
)

// TestSection describes one block of a test. The per-section time limit is
// advisory; only Banking-pattern tests enforce it, and they do so in the
// client, not here.
type TestSection struct {
	ID               string  `bson:"id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	Subject          string  `bson:"subject" json:"subject"`
	QuestionCount    int     `bson:"question_count" json:"question_count"`
	Marks            float64 `bson:"marks" json:"marks"`
	TimeLimitMinutes int     `bson:"time_limit_minutes" json:"time_limit_minutes"`
}

type TestDefinition struct {
	ID                string        `bson:"_id,omitempty" json:"id"`
	Name              string        `bson:"name" json:"name"`
	Type              TestType      `bson:"type" json:"type"`
	Description       string        `bson:"description" json:"description"`
	DurationMinutes   int           `bson:"duration_minutes" json:"duration_minutes"`
	TotalMarks        float64       `bson:"total_marks" json:"total_marks"`
	TotalQuestions    int           `bson:"total_questions" json:"total_questions"`
	Sections          []TestSection `bson:"sections" json:"sections"`
	Instructions      []string      `bson:"instructions" json:"instructions"`
	NegativeMarking   bool          `bson:"negative_marking" json:"negative_marking"`
	PassingPercentage float64       `bson:"passing_percentage" json:"passing_percentage"`
	CreatedAt         string        `bson:"created_at" json:"created_at"`
	IsActive          bool          `bson:"is_active" json:"is_active"`
}

// DistributionRule asks the builder for a number of questions per difficulty
// within one subject/topic pair.
type DistributionRule struct {
	Subject     string `bson:"subject" json:"subject"`
	Topic       string `bson:"topic" json:"topic"`
	EasyCount   int    `bson:"easy_count" json:"easy_count"`
	MediumCount int    `bson:"medium_count" json:"medium_count"`
	HardCount   int    `bson:"hard_count" json:"hard_count"`
}

// TestConfig is the optional per-test generation config. When a test has
// none, the builder falls back to drawing each section's question count by
// subject alone.
type TestConfig struct {
	ID                    string             `bson:"_id,omitempty" json:"id"`
	TestID                string             `bson:"test_id" json:"test_id"`
	QuestionDistribution  []DistributionRule `bson:"question_distribution" json:"question_distribution"`
	RandomizeQuestions    bool               `bson:"randomize_questions" json:"randomize_questions"`
	RandomizeOptions      bool               `bson:"randomize_options" json:"randomize_options"`
	ShowResultImmediately bool               `bson:"show_result_immediately" json:"show_result_immediately"`
	AllowReview           bool               `bson:"allow_review" json:"allow_review"`
	MaxAttempts           int                `bson:"max_attempts" json:"max_attempts"`
}
