package repository

import (
	"strings"

	"exam-service/internal/models"
)

// UserRepository is the read-only fixture-backed user directory. It exists
// to support the login stub; there is no credential storage.
type UserRepository struct {
	users []models.User
}

func NewUserRepository(users []models.User) *UserRepository {
	return &UserRepository{users: users}
}

func (r *UserRepository) FindByID(id string) (*models.User, bool) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, true
		}
	}
	return nil, false
}

func (r *UserRepository) FindByEmail(email string) (*models.User, bool) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, true
		}
	}
	return nil, false
}
