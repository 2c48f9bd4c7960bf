package service

import (
	"fmt"
	"log/slog"

	"github.com/JamesKha/micro-credentials-platform-back/internal/model"
	"github.com/JamesKha/micro-credentials-platform-back/internal/repository"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) List() ([]model.User, error) {
	users, err := s.userRepository.All()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteAll removes every account and returns the number removed.
// Removing nothing is a valid outcome.
func (s *UserService) DeleteAll() (int64, error) {
	count, err := s.userRepository.DeleteAll()
	if err != nil {
		return 0, fmt.Errorf("failed to delete users: %w", err)
	}

	slog.Info("all users deleted", "count", count)
	return count, nil
}
