package session

import "exam-service/internal/models"

// ComputeUserStats folds a user's attempt history into the longitudinal
// view: score/accuracy averages, subject strengths, merged topic-wise
// performance, and a per-attempt trend. Attempts are expected in
// chronological order; the improvement rate compares the last attempt's
// percentage against the first.
func ComputeUserStats(userID string, attempts []models.TestAttempt) *models.UserStats {
	stats := &models.UserStats{
		UserID:               userID,
		TopicWisePerformance: []models.TopicAnalysis{},
		PerformanceTrend:     []models.PerformanceTrend{},
	}
	if len(attempts) == 0 {
		return stats
	}

	stats.TotalTestsAttempted = len(attempts)
	stats.HighestScore = attempts[0].Percentage
	stats.LowestScore = attempts[0].Percentage

	var percentageSum, accuracySum float64
	topicAt := make(map[string]int)
	topicTime := make(map[string]float64)
	subjectTotals := make(map[string][2]int) // correct, total

	for _, a := range attempts {
		if a.Status == models.AttemptCompleted {
			stats.TotalTestsCompleted++
		}
		percentageSum += a.Percentage
		if a.Percentage > stats.HighestScore {
			stats.HighestScore = a.Percentage
		}
		if a.Percentage < stats.LowestScore {
			stats.LowestScore = a.Percentage
		}
		attemptedCount := a.CorrectAnswers + a.WrongAnswers
		if attemptedCount > 0 {
			accuracySum += float64(a.CorrectAnswers) / float64(attemptedCount) * 100
		}
		stats.TotalTimeSpentSeconds += a.TimeTakenSeconds

		for _, t := range a.TopicAnalysis {
			key := t.Subject + "/" + t.Topic
			i, seen := topicAt[key]
			if !seen {
				i = len(stats.TopicWisePerformance)
				topicAt[key] = i
				stats.TopicWisePerformance = append(stats.TopicWisePerformance, models.TopicAnalysis{
					Topic:   t.Topic,
					Subject: t.Subject,
				})
			}
			merged := &stats.TopicWisePerformance[i]
			merged.TotalQuestions += t.TotalQuestions
			merged.Correct += t.Correct
			merged.Wrong += t.Wrong
			merged.Unattempted += t.Unattempted
			topicTime[key] += t.AverageTimeSeconds * float64(t.TotalQuestions)

			totals := subjectTotals[t.Subject]
			totals[0] += t.Correct
			totals[1] += t.TotalQuestions
			subjectTotals[t.Subject] = totals
		}

		stats.PerformanceTrend = append(stats.PerformanceTrend, models.PerformanceTrend{
			Date:       a.StartTime.Format("2006-01-02"),
			TestName:   a.TestName,
			Score:      a.TotalScore,
			MaxScore:   a.MaxScore,
			Percentage: a.Percentage,
			Rank:       a.Rank,
		})
	}

	stats.AverageScore = percentageSum / float64(len(attempts))
	stats.AverageAccuracy = accuracySum / float64(len(attempts))

	for i := range stats.TopicWisePerformance {
		t := &stats.TopicWisePerformance[i]
		if t.TotalQuestions > 0 {
			t.Accuracy = float64(t.Correct) / float64(t.TotalQuestions) * 100
			t.AverageTimeSeconds = topicTime[t.Subject+"/"+t.Topic] / float64(t.TotalQuestions)
		}
		t.WeakArea = t.Accuracy < 75
	}

	bestAccuracy, worstAccuracy := -1.0, 101.0
	for subject, totals := range subjectTotals {
		if totals[1] == 0 {
			continue
		}
		accuracy := float64(totals[0]) / float64(totals[1]) * 100
		if accuracy > bestAccuracy {
			bestAccuracy = accuracy
			stats.StrongestSubject = subject
		}
		if accuracy < worstAccuracy {
			worstAccuracy = accuracy
			stats.WeakestSubject = subject
		}
	}

	first, last := attempts[0].Percentage, attempts[len(attempts)-1].Percentage
	if first > 0 {
		stats.ImprovementRate = (last - first) / first * 100
	}

	return stats
}
