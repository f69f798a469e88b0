package session

import (
	"math/rand"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

// Builder assembles a session's question sequence from a test definition
// and, when present, its generation config.
type Builder struct {
	catalog *repository.TestCatalog
	bank    *repository.QuestionRepository
	rng     *rand.Rand
}

func NewBuilder(catalog *repository.TestCatalog, bank *repository.QuestionRepository) *Builder {
	return &Builder{
		catalog: catalog,
		bank:    bank,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Build materializes a new session for the acting user. With a config, each
// distribution rule draws its easy/medium/hard counts scoped to the rule's
// subject and topic, concatenated in rule order; without one, each section
// draws its question count by subject alone, in section order. Under-filled
// draws are kept as-is: callers must tolerate fewer questions than the
// definition advertises.
func (b *Builder) Build(userID, testID string) (*State, error) {
	def, ok := b.catalog.FindByID(testID)
	if !ok {
		return nil, ErrTestNotFound
	}
	cfg, hasConfig := b.catalog.ConfigFor(testID)

	var questions []models.Question
	var sectionIDs []string

	if hasConfig {
		for _, rule := range cfg.QuestionDistribution {
			owner := sectionForSubject(def, rule.Subject)
			draws := []struct {
				difficulty models.Difficulty
				count      int
			}{
				{models.DifficultyEasy, rule.EasyCount},
				{models.DifficultyMedium, rule.MediumCount},
				{models.DifficultyHard, rule.HardCount},
			}
			for _, d := range draws {
				if d.count <= 0 {
					continue
				}
				drawn := b.bank.Sample(repository.Filter{
					Subjects:     []string{rule.Subject},
					Topics:       []string{rule.Topic},
					Difficulties: []models.Difficulty{d.difficulty},
					Count:        d.count,
				})
				questions = append(questions, drawn...)
				for range drawn {
					sectionIDs = append(sectionIDs, owner)
				}
			}
		}
	} else {
		for _, sec := range def.Sections {
			drawn := b.bank.Sample(repository.Filter{
				Subjects: []string{sec.Subject},
				Count:    sec.QuestionCount,
			})
			questions = append(questions, drawn...)
			for range drawn {
				sectionIDs = append(sectionIDs, sec.ID)
			}
		}
	}

	if hasConfig && cfg.RandomizeQuestions {
		// Fisher-Yates over the paired slices keeps section tags aligned
		// with their questions.
		b.rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
			sectionIDs[i], sectionIDs[j] = sectionIDs[j], sectionIDs[i]
		})
	}

	responses := make([]models.UserResponse, len(questions))
	index := make(map[string]int, len(questions))
	for i, q := range questions {
		responses[i] = models.UserResponse{
			QuestionID: q.ID,
			Selected:   models.Unanswered(),
		}
		index[q.ID] = i
	}

	return &State{
		UserID:        userID,
		Test:          def,
		Questions:     questions,
		SectionIDs:    sectionIDs,
		Responses:     responses,
		CurrentIndex:  0,
		SectionIndex:  0,
		StartTime:     time.Now(),
		TimeRemaining: def.DurationMinutes * 60,
		index:         index,
	}, nil
}

// sectionForSubject resolves a config rule's owning section: the first
// section in definition order with a matching subject. Rules whose subject
// appears in no section fall back to the first section.
func sectionForSubject(def *models.TestDefinition, subject string) string {
	for _, sec := range def.Sections {
		if sec.Subject == subject {
			return sec.ID
		}
	}
	if len(def.Sections) > 0 {
		return def.Sections[0].ID
	}
	return ""
}
