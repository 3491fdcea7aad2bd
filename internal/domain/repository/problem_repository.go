package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"codejam_core/internal/common"
	"codejam_core/internal/domain/model"
)

type ProblemRepository interface {
	Create(ctx context.Context, problem *model.Problem) error
	FindByID(ctx context.Context, id int64) (*model.Problem, error)
	FindBySlug(ctx context.Context, slug string) (*model.Problem, error)
	List(ctx context.Context, limit, offset int) ([]model.Problem, error)
	UpdateTestFileHash(ctx context.Context, id int64, newHash string) error
	Delete(ctx context.Context, id int64) error
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

func (r *pgProblemRepository) Create(ctx context.Context, p *model.Problem) error {
	query := `INSERT INTO problems (name, slug, description, points, test_file_hash)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Slug, p.Description, p.Points, p.TestFileHash).Scan(&p.ID)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("problem with this name or slug already exists: %w", common.ErrConflict)
		}
		return wrapErr("pgProblemRepository.Create", err)
	}
	return nil
}

func (r *pgProblemRepository) FindByID(ctx context.Context, id int64) (*model.Problem, error) {
	query := `SELECT id, name, slug, description, points, test_file_hash
	          FROM problems WHERE id = $1`
	problem := &model.Problem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&problem.ID, &problem.Name, &problem.Slug, &problem.Description, &problem.Points, &problem.TestFileHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapErr("pgProblemRepository.FindByID", err)
	}
	return problem, nil
}

func (r *pgProblemRepository) FindBySlug(ctx context.Context, slug string) (*model.Problem, error) {
	query := `SELECT id, name, slug, description, points, test_file_hash
	          FROM problems WHERE slug = $1`
	problem := &model.Problem{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&problem.ID, &problem.Name, &problem.Slug, &problem.Description, &problem.Points, &problem.TestFileHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapErr("pgProblemRepository.FindBySlug", err)
	}
	return problem, nil
}

func (r *pgProblemRepository) List(ctx context.Context, limit, offset int) ([]model.Problem, error) {
	query := `SELECT id, name, slug, description, points, test_file_hash
	          FROM problems ORDER BY id ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr("pgProblemRepository.List query", err)
	}
	defer rows.Close()

	problems := []model.Problem{}
	for rows.Next() {
		var p model.Problem
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Points, &p.TestFileHash); err != nil {
			return nil, wrapErr("pgProblemRepository.List scan", err)
		}
		problems = append(problems, p)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr("pgProblemRepository.List rows.Err", err)
	}
	return problems, nil
}

// UpdateTestFileHash records a new fingerprint for the problem's external test
// file set. Solved statuses on existing solutions are untouched; re-judging
// against the new tests is the judging service's concern.
func (r *pgProblemRepository) UpdateTestFileHash(ctx context.Context, id int64, newHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE problems SET test_file_hash = $1 WHERE id = $2`, newHash, id)
	if err != nil {
		return wrapErr("pgProblemRepository.UpdateTestFileHash", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr("pgProblemRepository.UpdateTestFileHash", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgProblemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM problems WHERE id = $1`, id)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("problem is referenced by existing solutions: %w", common.ErrConflict)
		}
		return wrapErr("pgProblemRepository.Delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr("pgProblemRepository.Delete", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
