package models

import "strings"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
	QuestionInteger  QuestionType = "integer"
)

// Question is an immutable bank entry. Correct holds the answer as a
// Selection so single-choice and multi-select questions share one shape.
type Question struct {
	ID            string       `bson:"_id,omitempty" json:"id"`
	Prompt        string       `bson:"prompt" json:"question"`
	Options       []string     `bson:"options" json:"options"`
	Correct       Selection    `bson:"correct_answer" json:"correct_answer"`
	Explanation   string       `bson:"explanation" json:"explanation"`
	Subject       string       `bson:"subject" json:"subject"`
	Topic         string       `bson:"topic" json:"topic"`
	SubTopic      string       `bson:"sub_topic,omitempty" json:"sub_topic,omitempty"`
	Difficulty    Difficulty   `bson:"difficulty" json:"difficulty"`
	Marks         float64      `bson:"marks" json:"marks"`
	NegativeMarks float64      `bson:"negative_marks" json:"negative_marks"`
	Type          QuestionType `bson:"type" json:"type"`
	Tags          []string     `bson:"tags" json:"tags"`
}

// HasTag reports whether the question carries the given tag, ignoring case.
func (q *Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
