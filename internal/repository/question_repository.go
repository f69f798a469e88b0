package repository

import (
	"math/rand"
	"sync"
	"time"

	"exam-service/internal/models"
)

// Filter narrows a sample draw. Empty fields are unconstrained; non-empty
// fields combine as a conjunction. Tag matches case-insensitively against
// the question's tag set. Count bounds the result; fewer matches than
// requested is not an error.
type Filter struct {
	Subjects     []string
	Topics       []string
	Difficulties []models.Difficulty
	Tag          string
	Count        int
}

// QuestionRepository is the read-only in-memory question bank. Sample order
// is randomized before the count limit is applied, so repeated draws with
// the same filter return different subsets.
type QuestionRepository struct {
	mu        sync.Mutex
	rng       *rand.Rand
	questions []models.Question
}

func NewQuestionRepository(questions []models.Question) *QuestionRepository {
	return &QuestionRepository{
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		questions: questions,
	}
}

func (r *QuestionRepository) Sample(f Filter) []models.Question {
	matched := make([]models.Question, 0)
	for _, q := range r.questions {
		if len(f.Subjects) > 0 && !containsString(f.Subjects, q.Subject) {
			continue
		}
		if len(f.Topics) > 0 && !containsString(f.Topics, q.Topic) {
			continue
		}
		if len(f.Difficulties) > 0 && !containsDifficulty(f.Difficulties, q.Difficulty) {
			continue
		}
		if f.Tag != "" && !q.HasTag(f.Tag) {
			continue
		}
		matched = append(matched, q)
	}

	r.mu.Lock()
	r.rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	r.mu.Unlock()

	if f.Count > 0 && f.Count < len(matched) {
		matched = matched[:f.Count]
	}
	return matched
}

func (r *QuestionRepository) FindByID(id string) (*models.Question, bool) {
	for i := range r.questions {
		if r.questions[i].ID == id {
			q := r.questions[i]
			return &q, true
		}
	}
	return nil, false
}

func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

// Subjects returns the distinct subjects in the bank, in first-seen order.
func (r *QuestionRepository) Subjects() []string {
	seen := make(map[string]bool)
	subjects := make([]string, 0)
	for _, q := range r.questions {
		if !seen[q.Subject] {
			seen[q.Subject] = true
			subjects = append(subjects, q.Subject)
		}
	}
	return subjects
}

// TopicsBySubject returns the distinct topics for one subject, in first-seen
// order.
func (r *QuestionRepository) TopicsBySubject(subject string) []string {
	seen := make(map[string]bool)
	topics := make([]string, 0)
	for _, q := range r.questions {
		if q.Subject != subject {
			continue
		}
		if !seen[q.Topic] {
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	return topics
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsDifficulty(list []models.Difficulty, d models.Difficulty) bool {
	for _, v := range list {
		if v == d {
			return true
		}
	}
	return false
}
