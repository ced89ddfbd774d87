package service

import (
	"context"
	"fmt"

	"github.com/frhanam/todo-list-api/internal/model"
	"github.com/frhanam/todo-list-api/internal/repository"
	"github.com/frhanam/todo-list-api/internal/result"
)

type UserService struct {
	users repository.Repository[*model.User]
}

func NewUserService(users repository.Repository[*model.User]) *UserService {
	return &UserService{users: users}
}

// GetUserByEmail returns the first user whose email matches exactly.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (result.Result[model.User], error) {
	q := s.users.Query().Where(repository.FieldEmail, repository.OpEq, email)

	user, ok, err := s.users.First(ctx, q)
	if err != nil {
		return result.Result[model.User]{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !ok {
		return result.Result[model.User]{
			Status:  result.StatusNotFound,
			Message: "user not found",
		}, nil
	}

	return result.Result[model.User]{
		Status: result.StatusSucceeded,
		Data:   user,
	}, nil
}

// Close releases the user repository.
func (s *UserService) Close() error {
	return s.users.Close()
}
