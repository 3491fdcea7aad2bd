package service

import (
	"context"
	"fmt"

	"codejam_core/internal/common"
	"codejam_core/internal/domain/model"
	"codejam_core/internal/domain/repository"
)

type SolutionService struct {
	solutionRepo repository.SolutionRepository
	leaderboard  *LeaderboardService
}

// NewSolutionService wires the solution repository and, optionally, the
// leaderboard service whose points cache is invalidated when verdicts change.
// leaderboard may be nil.
func NewSolutionService(solutionRepo repository.SolutionRepository, leaderboard *LeaderboardService) *SolutionService {
	return &SolutionService{solutionRepo: solutionRepo, leaderboard: leaderboard}
}

// SubmitAttempt stores the submitted content as the pair's latest attempt,
// creating the attempt record on first submission. The solved flag only
// changes through MarkSolved.
func (s *SolutionService) SubmitAttempt(ctx context.Context, userID, problemID int64, content string) (*model.Solution, error) {
	if userID <= 0 || problemID <= 0 {
		return nil, fmt.Errorf("user id and problem id are required: %w", common.ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("attempt content is required: %w", common.ErrValidation)
	}

	solution, err := s.solutionRepo.UpsertAttempt(ctx, userID, problemID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to submit attempt: %w", err)
	}
	return solution, nil
}

// MarkSolved records the verdict supplied by the external judging service.
func (s *SolutionService) MarkSolved(ctx context.Context, userID, problemID int64, solved bool) error {
	if userID <= 0 || problemID <= 0 {
		return fmt.Errorf("user id and problem id are required: %w", common.ErrValidation)
	}

	if err := s.solutionRepo.MarkSolved(ctx, userID, problemID, solved); err != nil {
		return err
	}
	if s.leaderboard != nil {
		// Stale cache entries expire on their own; invalidation just tightens
		// the window, so its failure does not fail the verdict write.
		_ = s.leaderboard.Invalidate(ctx, userID)
	}
	return nil
}

func (s *SolutionService) ListByUser(ctx context.Context, userID int64) ([]model.Solution, error) {
	return s.solutionRepo.ListByUser(ctx, userID)
}

func (s *SolutionService) ListByProblem(ctx context.Context, problemID int64) ([]model.Solution, error) {
	return s.solutionRepo.ListByProblem(ctx, problemID)
}
