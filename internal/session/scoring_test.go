package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"exam-service/internal/models"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// jeeStyleState builds a 25-question single-section session worth 100 marks
// with +4/-1 marking, then applies the given split in question order:
// the first `correct` answered right, the next `wrong` answered wrong, and
// the rest untouched.
func jeeStyleState(t *testing.T, correct, wrong int) *State {
	t.Helper()
	def := models.TestDefinition{
		ID:              "jee-practice",
		Name:            "JEE Practice",
		Type:            models.TestJEE,
		DurationMinutes: 60,
		TotalMarks:      100,
		TotalQuestions:  25,
		Sections: []models.TestSection{
			{ID: "sec-math", Name: "Mathematics", Subject: "Mathematics", QuestionCount: 25, Marks: 100},
		},
		NegativeMarking: true,
	}
	questions := genQuestions("math", "Mathematics", "Calculus", models.DifficultyMedium, 25)
	sectionIDs := make([]string, len(questions))
	responses := make([]models.UserResponse, len(questions))
	for i, q := range questions {
		sectionIDs[i] = "sec-math"
		responses[i] = models.UserResponse{QuestionID: q.ID, Selected: models.Unanswered()}
	}
	for i := 0; i < correct; i++ {
		responses[i].Selected = questions[i].Correct
		responses[i].Visited = true
	}
	for i := correct; i < correct+wrong; i++ {
		responses[i].Selected = models.SingleChoice((questions[i].Correct.Index + 1) % 4)
		responses[i].Visited = true
	}
	return &State{
		UserID:     "user-1",
		Test:       &def,
		Questions:  questions,
		SectionIDs: sectionIDs,
		Responses:  responses,
		StartTime:  time.Now().Add(-30 * time.Minute),
	}
}

func TestScoreWithNegativeMarking(t *testing.T) {
	// 18 correct, 5 wrong, 2 unattempted: 18*4 - 5*1 = 67 of 100.
	state := jeeStyleState(t, 18, 5)

	attempt, err := NewScorer().Score(state)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !almostEqual(attempt.TotalScore, 67) {
		t.Errorf("Expected score 67, got %.2f", attempt.TotalScore)
	}
	if !almostEqual(attempt.Percentage, 67) {
		t.Errorf("Expected 67%%, got %.2f", attempt.Percentage)
	}
	if attempt.CorrectAnswers != 18 || attempt.WrongAnswers != 5 || attempt.Unattempted != 2 {
		t.Errorf("Expected 18/5/2, got %d/%d/%d", attempt.CorrectAnswers, attempt.WrongAnswers, attempt.Unattempted)
	}
	if attempt.Status != models.AttemptCompleted {
		t.Errorf("Expected completed status, got %s", attempt.Status)
	}
	if !almostEqual(attempt.MaxScore, 100) {
		t.Errorf("Expected max score 100, got %.2f", attempt.MaxScore)
	}
}

func TestScoreWithoutNegativeMarking(t *testing.T) {
	// EAMCET style: 160 questions at 1 mark, no penalty. 128 correct of
	// 160 is 80 percent regardless of the 32 wrong.
	def := models.TestDefinition{
		ID:              "eamcet-practice",
		Name:            "EAMCET Practice",
		Type:            models.TestEAMCET,
		DurationMinutes: 180,
		TotalMarks:      160,
		TotalQuestions:  160,
		Sections: []models.TestSection{
			{ID: "sec-math", Name: "Mathematics", Subject: "Mathematics", QuestionCount: 160, Marks: 160},
		},
		NegativeMarking: false,
	}
	questions := genQuestions("math", "Mathematics", "Trigonometry", models.DifficultyEasy, 160)
	sectionIDs := make([]string, len(questions))
	responses := make([]models.UserResponse, len(questions))
	for i, q := range questions {
		questions[i].Marks = 1
		questions[i].NegativeMarks = 0.25
		sectionIDs[i] = "sec-math"
		selected := q.Correct
		if i >= 128 {
			selected = models.SingleChoice((q.Correct.Index + 1) % 4)
		}
		responses[i] = models.UserResponse{QuestionID: q.ID, Selected: selected, Visited: true}
	}
	state := &State{
		UserID:     "user-1",
		Test:       &def,
		Questions:  questions,
		SectionIDs: sectionIDs,
		Responses:  responses,
		StartTime:  time.Now(),
	}

	attempt, err := NewScorer().Score(state)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !almostEqual(attempt.TotalScore, 128) {
		t.Errorf("Expected score 128, got %.2f", attempt.TotalScore)
	}
	if !almostEqual(attempt.Percentage, 80) {
		t.Errorf("Expected 80%%, got %.2f", attempt.Percentage)
	}
}

func TestScoreClassificationCountsSum(t *testing.T) {
	testCases := []struct {
		name           string
		correct, wrong int
	}{
		{"all correct", 25, 0},
		{"all wrong", 0, 25},
		{"all unattempted", 0, 0},
		{"mixed", 10, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attempt, err := NewScorer().Score(jeeStyleState(t, tc.correct, tc.wrong))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			sum := attempt.CorrectAnswers + attempt.WrongAnswers + attempt.Unattempted
			if sum != 25 {
				t.Errorf("Expected counts to sum to 25, got %d", sum)
			}
		})
	}
}

func TestScoreAllUnattemptedIsZero(t *testing.T) {
	attempt, err := NewScorer().Score(jeeStyleState(t, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !almostEqual(attempt.TotalScore, 0) {
		t.Errorf("Expected score 0, got %.2f", attempt.TotalScore)
	}
	if attempt.Unattempted != 25 {
		t.Errorf("Expected 25 unattempted, got %d", attempt.Unattempted)
	}
}

func TestScoreSectionNotFlooredAtZero(t *testing.T) {
	// All wrong with negative marking drives the section below zero and it
	// stays there.
	attempt, err := NewScorer().Score(jeeStyleState(t, 0, 25))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !almostEqual(attempt.TotalScore, -25) {
		t.Errorf("Expected score -25, got %.2f", attempt.TotalScore)
	}
	if len(attempt.SectionScores) != 1 || !almostEqual(attempt.SectionScores[0].Score, -25) {
		t.Errorf("Expected section score -25, got %+v", attempt.SectionScores)
	}
}

func TestScoreSectionAttribution(t *testing.T) {
	def := models.TestDefinition{
		ID:              "two-sections",
		Name:            "Two Sections",
		Type:            models.TestNEET,
		DurationMinutes: 30,
		TotalMarks:      16,
		TotalQuestions:  4,
		Sections: []models.TestSection{
			{ID: "sec-bot", Name: "Botany", Subject: "Biology", QuestionCount: 2, Marks: 8},
			{ID: "sec-zoo", Name: "Zoology", Subject: "Biology", QuestionCount: 2, Marks: 8},
		},
		NegativeMarking: true,
	}
	questions := genQuestions("bio", "Biology", "Cell Biology", models.DifficultyEasy, 4)
	// Both sections share the Biology subject; only the build-time tags can
	// tell them apart.
	sectionIDs := []string{"sec-bot", "sec-bot", "sec-zoo", "sec-zoo"}
	responses := make([]models.UserResponse, 4)
	for i, q := range questions {
		responses[i] = models.UserResponse{QuestionID: q.ID, Selected: q.Correct, Visited: true}
	}
	// One zoology question wrong.
	responses[3].Selected = models.SingleChoice((questions[3].Correct.Index + 1) % 4)

	state := &State{
		UserID:     "user-1",
		Test:       &def,
		Questions:  questions,
		SectionIDs: sectionIDs,
		Responses:  responses,
		StartTime:  time.Now(),
	}
	attempt, err := NewScorer().Score(state)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !almostEqual(attempt.SectionScores[0].Score, 8) {
		t.Errorf("Expected botany 8, got %.2f", attempt.SectionScores[0].Score)
	}
	if !almostEqual(attempt.SectionScores[1].Score, 3) {
		t.Errorf("Expected zoology 4 - 1 = 3, got %.2f", attempt.SectionScores[1].Score)
	}
}

func TestScoreTopicAnalysis(t *testing.T) {
	// 18 of 25 correct in a single topic is 72 percent accuracy, just under
	// the 75 weak-area threshold.
	attempt, err := NewScorer().Score(jeeStyleState(t, 18, 5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(attempt.TopicAnalysis) != 1 {
		t.Fatalf("Expected one topic, got %d", len(attempt.TopicAnalysis))
	}
	topic := attempt.TopicAnalysis[0]
	if topic.Topic != "Calculus" || topic.Subject != "Mathematics" {
		t.Errorf("Unexpected topic identity: %+v", topic)
	}
	if topic.Correct != 18 || topic.Wrong != 5 || topic.Unattempted != 2 {
		t.Errorf("Expected 18/5/2, got %d/%d/%d", topic.Correct, topic.Wrong, topic.Unattempted)
	}
	if !almostEqual(topic.Accuracy, 72) {
		t.Errorf("Expected 72%% accuracy, got %.2f", topic.Accuracy)
	}
	if !topic.WeakArea {
		t.Error("Expected 72%% accuracy to flag a weak area")
	}

	// 19 of 25 is 76 percent, above the threshold.
	attempt, err = NewScorer().Score(jeeStyleState(t, 19, 6))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if attempt.TopicAnalysis[0].WeakArea {
		t.Error("Expected 76%% accuracy not to flag a weak area")
	}
}

func TestScoreAverageTimePerTopic(t *testing.T) {
	state := jeeStyleState(t, 25, 0)
	for i := range state.Responses {
		state.Responses[i].TimeSpentSeconds = 60
	}
	attempt, err := NewScorer().Score(state)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !almostEqual(attempt.TopicAnalysis[0].AverageTimeSeconds, 60) {
		t.Errorf("Expected 60s average, got %.2f", attempt.TopicAnalysis[0].AverageTimeSeconds)
	}
}

func TestScoreEmptySession(t *testing.T) {
	def := practiceTest()
	state := &State{UserID: "user-1", Test: &def, StartTime: time.Now()}
	if _, err := NewScorer().Score(state); !errors.Is(err, ErrEmptySession) {
		t.Errorf("Expected ErrEmptySession, got %v", err)
	}
}
