package service

import (
	"errors"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserService backs the login stub: identity is resolved by email lookup
// against the fixtures, with no credential check.
type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) LoginByEmail(email string) (*models.User, error) {
	user, ok := s.Repo.FindByEmail(email)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	user, ok := s.Repo.FindByID(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
