package repository

import (
	"context"
	"database/sql"
	"fmt"

	"codejam_core/internal/common"
	"codejam_core/internal/domain/model"
)

type SolutionRepository interface {
	UpsertAttempt(ctx context.Context, userID, problemID int64, content string) (*model.Solution, error)
	MarkSolved(ctx context.Context, userID, problemID int64, solved bool) error
	ListByUser(ctx context.Context, userID int64) ([]model.Solution, error)
	ListByProblem(ctx context.Context, problemID int64) ([]model.Solution, error)
	SumPointsByUser(ctx context.Context, userID int64) (int, error)
	GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type pgSolutionRepository struct {
	db *sql.DB
}

func NewPgSolutionRepository(db *sql.DB) SolutionRepository {
	return &pgSolutionRepository{db: db}
}

// UpsertAttempt records the latest submitted content for the (user, problem)
// pair. A single statement either inserts the attempt row or overwrites
// last_attempt on the existing one, so concurrent submissions cannot produce
// duplicate rows. The solved flag is never modified here.
func (r *pgSolutionRepository) UpsertAttempt(ctx context.Context, userID, problemID int64, content string) (*model.Solution, error) {
	query := `INSERT INTO solutions (user_id, problem_id, last_attempt)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, problem_id)
	          DO UPDATE SET last_attempt = EXCLUDED.last_attempt
	          RETURNING id, user_id, problem_id, last_attempt, solved`
	solution := &model.Solution{}
	err := r.db.QueryRowContext(ctx, query, userID, problemID, content).Scan(
		&solution.ID, &solution.UserID, &solution.ProblemID, &solution.LastAttempt, &solution.Solved,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("referenced user or problem does not exist: %w", common.ErrNotFound)
		}
		return nil, wrapErr("pgSolutionRepository.UpsertAttempt", err)
	}
	return solution, nil
}

// MarkSolved sets the judging verdict on an existing attempt. There is nothing
// to mark if the pair has never submitted, so an absent row is ErrNotFound.
func (r *pgSolutionRepository) MarkSolved(ctx context.Context, userID, problemID int64, solved bool) error {
	query := `UPDATE solutions SET solved = $3 WHERE user_id = $1 AND problem_id = $2`
	res, err := r.db.ExecContext(ctx, query, userID, problemID, solved)
	if err != nil {
		return wrapErr("pgSolutionRepository.MarkSolved", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr("pgSolutionRepository.MarkSolved", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgSolutionRepository) ListByUser(ctx context.Context, userID int64) ([]model.Solution, error) {
	query := `SELECT id, user_id, problem_id, last_attempt, solved
	          FROM solutions WHERE user_id = $1 ORDER BY id ASC`
	return r.list(ctx, "pgSolutionRepository.ListByUser", query, userID)
}

func (r *pgSolutionRepository) ListByProblem(ctx context.Context, problemID int64) ([]model.Solution, error) {
	query := `SELECT id, user_id, problem_id, last_attempt, solved
	          FROM solutions WHERE problem_id = $1 ORDER BY id ASC`
	return r.list(ctx, "pgSolutionRepository.ListByProblem", query, problemID)
}

func (r *pgSolutionRepository) list(ctx context.Context, op, query string, arg int64) ([]model.Solution, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, wrapErr(op+" query", err)
	}
	defer rows.Close()

	solutions := []model.Solution{}
	for rows.Next() {
		var s model.Solution
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProblemID, &s.LastAttempt, &s.Solved); err != nil {
			return nil, wrapErr(op+" scan", err)
		}
		solutions = append(solutions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op+" rows.Err", err)
	}
	return solutions, nil
}

// SumPointsByUser totals the points of the problems the user has solved.
// Unsolved attempts contribute nothing.
func (r *pgSolutionRepository) SumPointsByUser(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COALESCE(SUM(p.points), 0)
	          FROM solutions s
	          JOIN problems p ON p.id = s.problem_id
	          WHERE s.user_id = $1 AND s.solved`
	var points int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&points); err != nil {
		return 0, wrapErr("pgSolutionRepository.SumPointsByUser", err)
	}
	return points, nil
}

func (r *pgSolutionRepository) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	query := `SELECT u.id, u.username,
	                 COALESCE(SUM(p.points) FILTER (WHERE s.solved), 0) AS points,
	                 COUNT(s.id) FILTER (WHERE s.solved) AS problems_solved
	          FROM users u
	          LEFT JOIN solutions s ON s.user_id = u.id
	          LEFT JOIN problems p ON p.id = s.problem_id
	          GROUP BY u.id, u.username
	          ORDER BY points DESC, problems_solved DESC, u.id ASC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, wrapErr("pgSolutionRepository.GetLeaderboard query", err)
	}
	defer rows.Close()

	entries := []model.LeaderboardEntry{}
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Points, &e.ProblemsSolved); err != nil {
			return nil, wrapErr("pgSolutionRepository.GetLeaderboard scan", err)
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr("pgSolutionRepository.GetLeaderboard rows.Err", err)
	}
	return entries, nil
}
