package repository

import (
	"context"
	"sync"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttemptStore is the append-only history of scored attempts. Attempts are
// never updated or deleted once written.
type AttemptStore interface {
	Append(ctx context.Context, attempt *models.TestAttempt) error
	FindByUser(ctx context.Context, userID string) ([]models.TestAttempt, error)
	FindByTest(ctx context.Context, testID string) ([]models.TestAttempt, error)
}

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

func (r *AttemptRepository) Append(ctx context.Context, attempt *models.TestAttempt) error {
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

func (r *AttemptRepository) FindByUser(ctx context.Context, userID string) ([]models.TestAttempt, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *AttemptRepository) FindByTest(ctx context.Context, testID string) ([]models.TestAttempt, error) {
	return r.find(ctx, bson.M{"test_id": testID})
}

func (r *AttemptRepository) find(ctx context.Context, filter bson.M) ([]models.TestAttempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.TestAttempt
	for cur.Next(ctx) {
		var a models.TestAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, cur.Err()
}

// MemoryAttemptStore keeps attempt history in memory. It backs tests and
// runs without a Mongo instance when MONGO_URI is unset.
type MemoryAttemptStore struct {
	mu       sync.Mutex
	attempts []models.TestAttempt
}

func NewMemoryAttemptStore(seed []models.TestAttempt) *MemoryAttemptStore {
	return &MemoryAttemptStore{attempts: append([]models.TestAttempt(nil), seed...)}
}

func (s *MemoryAttemptStore) Append(_ context.Context, attempt *models.TestAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, *attempt)
	return nil
}

func (s *MemoryAttemptStore) FindByUser(_ context.Context, userID string) ([]models.TestAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.TestAttempt
	for _, a := range s.attempts {
		if a.UserID == userID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (s *MemoryAttemptStore) FindByTest(_ context.Context, testID string) ([]models.TestAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.TestAttempt
	for _, a := range s.attempts {
		if a.TestID == testID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
