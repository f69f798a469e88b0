package session

import (
	"testing"
	"time"

	"exam-service/internal/models"
)

func statsAttempt(day int, percentage float64, correct, wrong int, topics []models.TopicAnalysis) models.TestAttempt {
	return models.TestAttempt{
		ID:               "attempt-" + time.Date(2024, 3, day, 10, 0, 0, 0, time.UTC).Format("02"),
		UserID:           "user-1",
		TestID:           "jee-practice",
		TestName:         "JEE Practice",
		TestType:         models.TestJEE,
		StartTime:        time.Date(2024, 3, day, 10, 0, 0, 0, time.UTC),
		Status:           models.AttemptCompleted,
		TotalScore:       percentage,
		MaxScore:         100,
		CorrectAnswers:   correct,
		WrongAnswers:     wrong,
		TimeTakenSeconds: 3600,
		Percentage:       percentage,
		TopicAnalysis:    topics,
	}
}

func TestComputeUserStatsEmptyHistory(t *testing.T) {
	stats := ComputeUserStats("user-1", nil)
	if stats.TotalTestsAttempted != 0 {
		t.Errorf("Expected 0 attempts, got %d", stats.TotalTestsAttempted)
	}
	if stats.TopicWisePerformance == nil || stats.PerformanceTrend == nil {
		t.Error("Expected empty slices, not nil")
	}
}

func TestComputeUserStatsAggregates(t *testing.T) {
	attempts := []models.TestAttempt{
		statsAttempt(1, 50, 15, 10, []models.TopicAnalysis{
			{Topic: "Calculus", Subject: "Mathematics", TotalQuestions: 10, Correct: 8, Wrong: 2, AverageTimeSeconds: 60},
			{Topic: "Mechanics", Subject: "Physics", TotalQuestions: 10, Correct: 4, Wrong: 6, AverageTimeSeconds: 90},
		}),
		statsAttempt(8, 75, 20, 5, []models.TopicAnalysis{
			{Topic: "Calculus", Subject: "Mathematics", TotalQuestions: 10, Correct: 9, Wrong: 1, AverageTimeSeconds: 40},
		}),
	}

	stats := ComputeUserStats("user-1", attempts)

	if stats.TotalTestsAttempted != 2 || stats.TotalTestsCompleted != 2 {
		t.Errorf("Expected 2 attempted/completed, got %d/%d", stats.TotalTestsAttempted, stats.TotalTestsCompleted)
	}
	if !almostEqual(stats.AverageScore, 62.5) {
		t.Errorf("Expected average 62.5, got %.2f", stats.AverageScore)
	}
	if !almostEqual(stats.HighestScore, 75) || !almostEqual(stats.LowestScore, 50) {
		t.Errorf("Expected high 75 low 50, got %.2f/%.2f", stats.HighestScore, stats.LowestScore)
	}
	// Accuracy per attempt: 15/25 = 60 and 20/25 = 80, averaging 70.
	if !almostEqual(stats.AverageAccuracy, 70) {
		t.Errorf("Expected accuracy 70, got %.2f", stats.AverageAccuracy)
	}
	if stats.TotalTimeSpentSeconds != 7200 {
		t.Errorf("Expected 7200 seconds, got %d", stats.TotalTimeSpentSeconds)
	}
	// 50 to 75 is a 50 percent improvement over the first attempt.
	if !almostEqual(stats.ImprovementRate, 50) {
		t.Errorf("Expected improvement 50, got %.2f", stats.ImprovementRate)
	}
	if len(stats.PerformanceTrend) != 2 {
		t.Fatalf("Expected 2 trend points, got %d", len(stats.PerformanceTrend))
	}
	if stats.PerformanceTrend[0].Date != "2024-03-01" {
		t.Errorf("Expected trend date 2024-03-01, got %s", stats.PerformanceTrend[0].Date)
	}
}

func TestComputeUserStatsMergesTopics(t *testing.T) {
	attempts := []models.TestAttempt{
		statsAttempt(1, 50, 8, 2, []models.TopicAnalysis{
			{Topic: "Calculus", Subject: "Mathematics", TotalQuestions: 10, Correct: 8, Wrong: 2, AverageTimeSeconds: 60},
		}),
		statsAttempt(8, 60, 6, 4, []models.TopicAnalysis{
			{Topic: "Calculus", Subject: "Mathematics", TotalQuestions: 10, Correct: 6, Wrong: 4, AverageTimeSeconds: 30},
		}),
	}

	stats := ComputeUserStats("user-1", attempts)

	if len(stats.TopicWisePerformance) != 1 {
		t.Fatalf("Expected one merged topic, got %d", len(stats.TopicWisePerformance))
	}
	merged := stats.TopicWisePerformance[0]
	if merged.TotalQuestions != 20 || merged.Correct != 14 || merged.Wrong != 6 {
		t.Errorf("Expected 20/14/6, got %d/%d/%d", merged.TotalQuestions, merged.Correct, merged.Wrong)
	}
	if !almostEqual(merged.Accuracy, 70) {
		t.Errorf("Expected merged accuracy 70, got %.2f", merged.Accuracy)
	}
	// Time is question-weighted: (60*10 + 30*10) / 20 = 45.
	if !almostEqual(merged.AverageTimeSeconds, 45) {
		t.Errorf("Expected weighted average 45, got %.2f", merged.AverageTimeSeconds)
	}
	if !merged.WeakArea {
		t.Error("Expected 70%% merged accuracy to flag a weak area")
	}
}

func TestComputeUserStatsSubjectExtremes(t *testing.T) {
	attempts := []models.TestAttempt{
		statsAttempt(1, 50, 12, 8, []models.TopicAnalysis{
			{Topic: "Calculus", Subject: "Mathematics", TotalQuestions: 10, Correct: 9, Wrong: 1},
			{Topic: "Mechanics", Subject: "Physics", TotalQuestions: 10, Correct: 3, Wrong: 7},
		}),
	}

	stats := ComputeUserStats("user-1", attempts)
	if stats.StrongestSubject != "Mathematics" {
		t.Errorf("Expected Mathematics strongest, got %s", stats.StrongestSubject)
	}
	if stats.WeakestSubject != "Physics" {
		t.Errorf("Expected Physics weakest, got %s", stats.WeakestSubject)
	}
}

func TestComputeUserStatsImprovementFromZero(t *testing.T) {
	attempts := []models.TestAttempt{
		statsAttempt(1, 0, 0, 10, nil),
		statsAttempt(8, 40, 10, 0, nil),
	}
	stats := ComputeUserStats("user-1", attempts)
	if !almostEqual(stats.ImprovementRate, 0) {
		t.Errorf("Expected improvement to stay 0 when the first attempt scored 0, got %.2f", stats.ImprovementRate)
	}
}
