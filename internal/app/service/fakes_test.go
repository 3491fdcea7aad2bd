package service

import (
	"context"
	"errors"

	"codejam_core/internal/domain/model"
)

type fakeUserRepo struct {
	createFn         func(user *model.User) error
	findByIDFn       func(id int64) (*model.User, error)
	findByUsernameFn func(username string) (*model.User, error)
	updateTokenFn    func(id int64, token *string) error
	deleteFn         func(id int64) error

	createCalls     int
	lastToken       *string
	lastTokenUserID int64
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	f.createCalls++
	if f.createFn == nil {
		return errors.New("Create not implemented")
	}
	return f.createFn(user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	if f.findByIDFn == nil {
		return nil, errors.New("FindByID not implemented")
	}
	return f.findByIDFn(id)
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.findByUsernameFn == nil {
		return nil, errors.New("FindByUsername not implemented")
	}
	return f.findByUsernameFn(username)
}

func (f *fakeUserRepo) UpdateRememberToken(ctx context.Context, id int64, token *string) error {
	f.lastToken = token
	f.lastTokenUserID = id
	if f.updateTokenFn == nil {
		return nil
	}
	return f.updateTokenFn(id, token)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(id)
}

type fakeProblemRepo struct {
	createFn     func(problem *model.Problem) error
	findByIDFn   func(id int64) (*model.Problem, error)
	findBySlugFn func(slug string) (*model.Problem, error)
	listFn       func(limit, offset int) ([]model.Problem, error)
	updateHashFn func(id int64, newHash string) error
	deleteFn     func(id int64) error

	createCalls          int
	lastLimit, lastOffset int
}

func (f *fakeProblemRepo) Create(ctx context.Context, problem *model.Problem) error {
	f.createCalls++
	if f.createFn == nil {
		return errors.New("Create not implemented")
	}
	return f.createFn(problem)
}

func (f *fakeProblemRepo) FindByID(ctx context.Context, id int64) (*model.Problem, error) {
	if f.findByIDFn == nil {
		return nil, errors.New("FindByID not implemented")
	}
	return f.findByIDFn(id)
}

func (f *fakeProblemRepo) FindBySlug(ctx context.Context, slug string) (*model.Problem, error) {
	if f.findBySlugFn == nil {
		return nil, errors.New("FindBySlug not implemented")
	}
	return f.findBySlugFn(slug)
}

func (f *fakeProblemRepo) List(ctx context.Context, limit, offset int) ([]model.Problem, error) {
	f.lastLimit, f.lastOffset = limit, offset
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(limit, offset)
}

func (f *fakeProblemRepo) UpdateTestFileHash(ctx context.Context, id int64, newHash string) error {
	if f.updateHashFn == nil {
		return nil
	}
	return f.updateHashFn(id, newHash)
}

func (f *fakeProblemRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(id)
}

type fakeSolutionRepo struct {
	upsertFn        func(userID, problemID int64, content string) (*model.Solution, error)
	markSolvedFn    func(userID, problemID int64, solved bool) error
	listByUserFn    func(userID int64) ([]model.Solution, error)
	listByProblemFn func(problemID int64) ([]model.Solution, error)
	sumPointsFn     func(userID int64) (int, error)
	leaderboardFn   func(limit int) ([]model.LeaderboardEntry, error)

	upsertCalls    int
	sumPointsCalls int
	lastLimit      int
}

func (f *fakeSolutionRepo) UpsertAttempt(ctx context.Context, userID, problemID int64, content string) (*model.Solution, error) {
	f.upsertCalls++
	if f.upsertFn == nil {
		return nil, errors.New("UpsertAttempt not implemented")
	}
	return f.upsertFn(userID, problemID, content)
}

func (f *fakeSolutionRepo) MarkSolved(ctx context.Context, userID, problemID int64, solved bool) error {
	if f.markSolvedFn == nil {
		return nil
	}
	return f.markSolvedFn(userID, problemID, solved)
}

func (f *fakeSolutionRepo) ListByUser(ctx context.Context, userID int64) ([]model.Solution, error) {
	if f.listByUserFn == nil {
		return nil, nil
	}
	return f.listByUserFn(userID)
}

func (f *fakeSolutionRepo) ListByProblem(ctx context.Context, problemID int64) ([]model.Solution, error) {
	if f.listByProblemFn == nil {
		return nil, nil
	}
	return f.listByProblemFn(problemID)
}

func (f *fakeSolutionRepo) SumPointsByUser(ctx context.Context, userID int64) (int, error) {
	f.sumPointsCalls++
	if f.sumPointsFn == nil {
		return 0, errors.New("SumPointsByUser not implemented")
	}
	return f.sumPointsFn(userID)
}

func (f *fakeSolutionRepo) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	f.lastLimit = limit
	if f.leaderboardFn == nil {
		return nil, nil
	}
	return f.leaderboardFn(limit)
}
