package service

import (
	"context"
	"fmt"

	"codejam_core/internal/common"
	"codejam_core/internal/domain/model"
	"codejam_core/internal/domain/repository"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo     repository.UserRepository
	solutionRepo repository.SolutionRepository
}

func NewUserService(userRepo repository.UserRepository, solutionRepo repository.SolutionRepository) *UserService {
	return &UserService{userRepo: userRepo, solutionRepo: solutionRepo}
}

// Register creates a user from a username and an opaque credential. The
// credential arrives pre-hashed from the external credential service and is
// stored verbatim.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", common.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("password is required: %w", common.ErrValidation)
	}

	user := &model.User{
		Username: username,
		Password: password,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", common.ErrValidation)
	}
	return s.userRepo.FindByUsername(ctx, username)
}

// IssueRememberToken generates a fresh opaque token, stores it on the user and
// returns it. The token carries no meaning inside this core; it only has to be
// unique, which the store enforces.
func (s *UserService) IssueRememberToken(ctx context.Context, id int64) (string, error) {
	token := uuid.NewString()
	if err := s.userRepo.UpdateRememberToken(ctx, id, &token); err != nil {
		return "", fmt.Errorf("failed to issue remember token: %w", err)
	}
	return token, nil
}

func (s *UserService) ClearRememberToken(ctx context.Context, id int64) error {
	return s.userRepo.UpdateRememberToken(ctx, id, nil)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// Points returns the user's current score straight from the store. Cached
// reads go through the leaderboard service instead.
func (s *UserService) Points(ctx context.Context, id int64) (int, error) {
	return s.solutionRepo.SumPointsByUser(ctx, id)
}
