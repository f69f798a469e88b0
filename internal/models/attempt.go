package models

import "time"

const AttemptCompleted = "completed"

type SectionScore struct {
	SectionID   string  `bson:"section_id" json:"section_id"`
	SectionName string  `bson:"section_name" json:"section_name"`
	Score       float64 `bson:"score" json:"score"`
	MaxScore    float64 `bson:"max_score" json:"max_score"`
}

// TopicAnalysis aggregates performance per (subject, topic) pair, either
// within a single attempt or merged across attempts for longitudinal stats.
type TopicAnalysis struct {
	Topic              string  `bson:"topic" json:"topic"`
	Subject            string  `bson:"subject" json:"subject"`
	TotalQuestions     int     `bson:"total_questions" json:"total_questions"`
	Correct            int     `bson:"correct" json:"correct"`
	Wrong              int     `bson:"wrong" json:"wrong"`
	Unattempted        int     `bson:"unattempted" json:"unattempted"`
	Accuracy           float64 `bson:"accuracy" json:"accuracy"`
	AverageTimeSeconds float64 `bson:"average_time_seconds" json:"average_time_seconds"`
	WeakArea           bool    `bson:"weak_area" json:"weak_area"`
}

// TestAttempt is the immutable scored result of one completed session.
// Rank and TotalParticipants are external enrichment (leaderboard) and stay
// zero unless a collaborator fills them in.
type TestAttempt struct {
	ID                string          `bson:"_id,omitempty" json:"id"`
	UserID            string          `bson:"user_id" json:"user_id"`
	TestID            string          `bson:"test_id" json:"test_id"`
	TestName          string          `bson:"test_name" json:"test_name"`
	TestType          TestType        `bson:"test_type" json:"test_type"`
	StartTime         time.Time       `bson:"start_time" json:"start_time"`
	EndTime           time.Time       `bson:"end_time" json:"end_time"`
	Status            string          `bson:"status" json:"status"`
	Responses         []UserResponse  `bson:"responses" json:"responses"`
	TotalScore        float64         `bson:"total_score" json:"total_score"`
	MaxScore          float64         `bson:"max_score" json:"max_score"`
	CorrectAnswers    int             `bson:"correct_answers" json:"correct_answers"`
	WrongAnswers      int             `bson:"wrong_answers" json:"wrong_answers"`
	Unattempted       int             `bson:"unattempted" json:"unattempted"`
	TimeTakenSeconds  int             `bson:"time_taken_seconds" json:"time_taken_seconds"`
	Percentage        float64         `bson:"percentage" json:"percentage"`
	Rank              int             `bson:"rank,omitempty" json:"rank,omitempty"`
	TotalParticipants int             `bson:"total_participants,omitempty" json:"total_participants,omitempty"`
	SectionScores     []SectionScore  `bson:"section_scores" json:"section_scores"`
	TopicAnalysis     []TopicAnalysis `bson:"topic_analysis" json:"topic_analysis"`
}

type PerformanceTrend struct {
	Date       string  `bson:"date" json:"date"`
	TestName   string  `bson:"test_name" json:"test_name"`
	Score      float64 `bson:"score" json:"score"`
	MaxScore   float64 `bson:"max_score" json:"max_score"`
	Percentage float64 `bson:"percentage" json:"percentage"`
	Rank       int     `bson:"rank,omitempty" json:"rank,omitempty"`
}

// UserStats is the longitudinal view over all of a user's attempts.
type UserStats struct {
	UserID                string             `bson:"user_id" json:"user_id"`
	TotalTestsAttempted   int                `bson:"total_tests_attempted" json:"total_tests_attempted"`
	TotalTestsCompleted   int                `bson:"total_tests_completed" json:"total_tests_completed"`
	AverageScore          float64            `bson:"average_score" json:"average_score"`
	HighestScore          float64            `bson:"highest_score" json:"highest_score"`
	LowestScore           float64            `bson:"lowest_score" json:"lowest_score"`
	AverageAccuracy       float64            `bson:"average_accuracy" json:"average_accuracy"`
	TotalTimeSpentSeconds int                `bson:"total_time_spent_seconds" json:"total_time_spent_seconds"`
	StrongestSubject      string             `bson:"strongest_subject" json:"strongest_subject"`
	WeakestSubject        string             `bson:"weakest_subject" json:"weakest_subject"`
	ImprovementRate       float64            `bson:"improvement_rate" json:"improvement_rate"`
	TopicWisePerformance  []TopicAnalysis    `bson:"topic_wise_performance" json:"topic_wise_performance"`
	PerformanceTrend      []PerformanceTrend `bson:"performance_trend" json:"performance_trend"`
}
