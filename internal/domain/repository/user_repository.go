package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"codejam_core/internal/common"
	"codejam_core/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateRememberToken(ctx context.Context, id int64, token *string) error
	Delete(ctx context.Context, id int64) error
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

// Create inserts the user and fills in the store-assigned id and join date.
// The unique index on username arbitrates concurrent registrations: the
// second insert of the same name fails with ErrConflict.
func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, password)
	          VALUES ($1, $2)
	          RETURNING id, join_date`
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Password).Scan(&user.ID, &user.JoinDate)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("user with given username already exists: %w", common.ErrConflict)
		}
		return wrapErr("pgUserRepository.Create", err)
	}
	return nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, username, password, remember_token, join_date
	          FROM users WHERE id = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Password, &user.RememberToken, &user.JoinDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapErr("pgUserRepository.FindByID", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, password, remember_token, join_date
	          FROM users WHERE username = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.RememberToken, &user.JoinDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapErr("pgUserRepository.FindByUsername", err)
	}
	return user, nil
}

// UpdateRememberToken sets the persistent-login token, or clears it when token
// is nil. The token is opaque to this core.
func (r *pgUserRepository) UpdateRememberToken(ctx context.Context, id int64, token *string) error {
	query := `UPDATE users SET remember_token = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, token, id)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("remember token already in use: %w", common.ErrConflict)
		}
		return wrapErr("pgUserRepository.UpdateRememberToken", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr("pgUserRepository.UpdateRememberToken", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Delete removes the user. Users still referenced by solutions are protected
// by the foreign key and reported as ErrConflict; cascading is left to the
// calling application as an explicit decision.
func (r *pgUserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("user is referenced by existing solutions: %w", common.ErrConflict)
		}
		return wrapErr("pgUserRepository.Delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr("pgUserRepository.Delete", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
