package database

import (
	"context"
	"database/sql"
	"fmt"

	"codejam_core/internal/common"
)

// createTablesSQL holds the full table definitions. Solutions carry a
// composite unique key on (user_id, problem_id): each user keeps exactly one
// attempt record per problem. Both foreign keys restrict deletion so that a
// referenced user or problem cannot be removed out from under its solutions.
const createTablesSQL = `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	remember_token TEXT UNIQUE,
	join_date TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS problems (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	slug TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL,
	points INT NOT NULL,
	test_file_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS solutions (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE RESTRICT,
	problem_id BIGINT NOT NULL REFERENCES problems (id) ON DELETE RESTRICT,
	last_attempt TEXT NOT NULL,
	solved BOOLEAN NOT NULL DEFAULT FALSE,
	UNIQUE (user_id, problem_id)
);
`

// EnsureSchema creates the three tables if they do not exist yet. Safe to run
// on every startup; existing data is never touched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTablesSQL); err != nil {
		return fmt.Errorf("database.EnsureSchema: %v: %w", err, common.ErrSchema)
	}
	return nil
}

// ResetSchema drops the public schema wholesale and recreates the tables from
// scratch. Destructive: every row in every table is lost. The caller must pass
// confirm=true or the operation is refused without touching the store.
func ResetSchema(ctx context.Context, db *sql.DB, confirm bool) error {
	if !confirm {
		return fmt.Errorf("database.ResetSchema: explicit confirmation required for destructive reset: %w", common.ErrValidation)
	}
	if _, err := db.ExecContext(ctx, `DROP SCHEMA public CASCADE; CREATE SCHEMA public;`); err != nil {
		return fmt.Errorf("database.ResetSchema: %v: %w", err, common.ErrSchema)
	}
	return EnsureSchema(ctx, db)
}
