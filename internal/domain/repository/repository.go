package repository

import (
	"context"
	"errors"
	"fmt"

	"codejam_core/internal/common"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories map onto the domain taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapErr adds operation context to a store failure. Deadline and cancellation
// failures surface as ErrTimeout so callers never have to inspect driver errors.
func wrapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, common.ErrTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
