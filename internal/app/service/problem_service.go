package service

import (
	"context"
	"fmt"

	"codejam_core/internal/common"
	"codejam_core/internal/domain/model"
	"codejam_core/internal/domain/repository"

	"github.com/gosimple/slug"
)

const defaultListLimit = 50

type ProblemService struct {
	problemRepo repository.ProblemRepository
}

func NewProblemService(problemRepo repository.ProblemRepository) *ProblemService {
	return &ProblemService{problemRepo: problemRepo}
}

type CreateProblemRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Points       int    `json:"points"`
	TestFileHash string `json:"test_file_hash"`
}

func (s *ProblemService) Create(ctx context.Context, req CreateProblemRequest) (*model.Problem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("problem name is required: %w", common.ErrValidation)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("problem description is required: %w", common.ErrValidation)
	}
	if req.Points < 0 {
		return nil, fmt.Errorf("problem points must not be negative: %w", common.ErrValidation)
	}
	if req.TestFileHash == "" {
		return nil, fmt.Errorf("test file hash is required: %w", common.ErrValidation)
	}

	problem := &model.Problem{
		Name:         req.Name,
		Slug:         slug.Make(req.Name),
		Description:  req.Description,
		Points:       req.Points,
		TestFileHash: req.TestFileHash,
	}
	if err := s.problemRepo.Create(ctx, problem); err != nil {
		return nil, fmt.Errorf("failed to create problem: %w", err)
	}
	return problem, nil
}

func (s *ProblemService) GetByID(ctx context.Context, id int64) (*model.Problem, error) {
	return s.problemRepo.FindByID(ctx, id)
}

func (s *ProblemService) GetBySlug(ctx context.Context, problemSlug string) (*model.Problem, error) {
	if problemSlug == "" {
		return nil, fmt.Errorf("problem slug is required: %w", common.ErrValidation)
	}
	return s.problemRepo.FindBySlug(ctx, problemSlug)
}

func (s *ProblemService) List(ctx context.Context, limit, offset int) ([]model.Problem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.problemRepo.List(ctx, limit, offset)
}

// UpdateTestFileHash is called by problem-authoring tooling when the external
// test file set changes. Existing solved statuses stay as they are.
func (s *ProblemService) UpdateTestFileHash(ctx context.Context, id int64, newHash string) error {
	if newHash == "" {
		return fmt.Errorf("test file hash is required: %w", common.ErrValidation)
	}
	return s.problemRepo.UpdateTestFileHash(ctx, id, newHash)
}

func (s *ProblemService) Delete(ctx context.Context, id int64) error {
	return s.problemRepo.Delete(ctx, id)
}
