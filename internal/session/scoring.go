package session

import (
	"fmt"
	"time"

	"exam-service/internal/models"
)

// Scorer turns a finished session into an immutable TestAttempt. Scoring is
// a pure function of the session state; the only clock use is capturing the
// end time.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score classifies every (question, response) pair as correct, wrong, or
// unattempted, accumulates totals, per-section scores, and per-topic
// analysis, and emits the completed attempt. Wrong answers subtract the
// question's negative marks when the test has negative marking; section
// scores are not floored at zero.
func (sc *Scorer) Score(state *State) (*models.TestAttempt, error) {
	if len(state.Questions) == 0 {
		return nil, ErrEmptySession
	}

	endTime := time.Now()
	timeTaken := int(endTime.Sub(state.StartTime).Seconds())

	sectionScores := make([]models.SectionScore, len(state.Test.Sections))
	sectionAt := make(map[string]int, len(state.Test.Sections))
	for i, sec := range state.Test.Sections {
		sectionScores[i] = models.SectionScore{
			SectionID:   sec.ID,
			SectionName: sec.Name,
			MaxScore:    sec.Marks,
		}
		sectionAt[sec.ID] = i
	}

	var totalScore float64
	var correct, wrong, unattempted int

	topicAt := make(map[string]int)
	topics := make([]models.TopicAnalysis, 0)
	topicTime := make(map[string]int)

	for i, q := range state.Questions {
		resp := state.Responses[i]

		key := q.Subject + "/" + q.Topic
		ti, seen := topicAt[key]
		if !seen {
			ti = len(topics)
			topicAt[key] = ti
			topics = append(topics, models.TopicAnalysis{
				Topic:   q.Topic,
				Subject: q.Subject,
			})
		}
		topics[ti].TotalQuestions++
		topicTime[key] += resp.TimeSpentSeconds

		si := -1
		if i < len(state.SectionIDs) {
			if at, ok := sectionAt[state.SectionIDs[i]]; ok {
				si = at
			}
		}

		switch {
		case !resp.Selected.IsAnswered():
			unattempted++
			topics[ti].Unattempted++
		case resp.Selected.Matches(q.Correct):
			correct++
			totalScore += q.Marks
			topics[ti].Correct++
			if si >= 0 {
				sectionScores[si].Score += q.Marks
			}
		default:
			wrong++
			topics[ti].Wrong++
			if state.Test.NegativeMarking {
				totalScore -= q.NegativeMarks
				if si >= 0 {
					sectionScores[si].Score -= q.NegativeMarks
				}
			}
		}
	}

	for i := range topics {
		t := &topics[i]
		if t.TotalQuestions > 0 {
			t.Accuracy = float64(t.Correct) / float64(t.TotalQuestions) * 100
			key := t.Subject + "/" + t.Topic
			t.AverageTimeSeconds = float64(topicTime[key]) / float64(t.TotalQuestions)
		}
		t.WeakArea = t.Accuracy < 75
	}

	maxScore := state.Test.TotalMarks
	percentage := 0.0
	if maxScore > 0 {
		percentage = totalScore / maxScore * 100
	}

	return &models.TestAttempt{
		ID:               fmt.Sprintf("attempt-%d", endTime.UnixNano()),
		UserID:           state.UserID,
		TestID:           state.Test.ID,
		TestName:         state.Test.Name,
		TestType:         state.Test.Type,
		StartTime:        state.StartTime,
		EndTime:          endTime,
		Status:           models.AttemptCompleted,
		Responses:        state.Responses,
		TotalScore:       totalScore,
		MaxScore:         maxScore,
		CorrectAnswers:   correct,
		WrongAnswers:     wrong,
		Unattempted:      unattempted,
		TimeTakenSeconds: timeTaken,
		Percentage:       percentage,
		SectionScores:    sectionScores,
		TopicAnalysis:    topics,
	}, nil
}
