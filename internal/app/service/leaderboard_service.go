package service

import (
	"context"
	"fmt"
	"time"

	"codejam_core/internal/domain/model"
	"codejam_core/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const defaultLeaderboardSize = 10

type LeaderboardService struct {
	solutionRepo repository.SolutionRepository
	rdb          *redis.Client
	ttl          time.Duration
}

// NewLeaderboardService builds the points/ranking service. rdb may be nil, in
// which case every read goes straight to the store.
func NewLeaderboardService(solutionRepo repository.SolutionRepository, rdb *redis.Client, ttl time.Duration) *LeaderboardService {
	return &LeaderboardService{solutionRepo: solutionRepo, rdb: rdb, ttl: ttl}
}

func pointsKey(userID int64) string {
	return fmt.Sprintf("codejam:points:%d", userID)
}

// UserPoints returns the user's score, served from Redis when a fresh value is
// cached. Cache failures fall back to the store; Redis being down never fails
// a read.
func (s *LeaderboardService) UserPoints(ctx context.Context, userID int64) (int, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, pointsKey(userID)).Int(); err == nil {
			return cached, nil
		}
	}

	points, err := s.solutionRepo.SumPointsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.rdb != nil {
		s.rdb.Set(ctx, pointsKey(userID), points, s.ttl)
	}
	return points, nil
}

// Invalidate drops the cached score for the user, forcing the next UserPoints
// call back to the store.
func (s *LeaderboardService) Invalidate(ctx context.Context, userID int64) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, pointsKey(userID)).Err()
}

func (s *LeaderboardService) Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	if n <= 0 {
		n = defaultLeaderboardSize
	}
	return s.solutionRepo.GetLeaderboard(ctx, n)
}
