package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound   = errors.New("requested resource not found")
	ErrConflict   = errors.New("resource conflict") // e.g., username already exists
	ErrValidation = errors.New("validation failed")
	ErrSchema     = errors.New("schema operation failed")
	ErrTimeout    = errors.New("store operation timed out")
)

// HTTPStatusFromError maps domain errors to HTTP status codes. The API layer
// consuming this core is expected to use it when translating repository and
// service failures into responses.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrTimeout) {
		return http.StatusServiceUnavailable
	}

	// Check for pgx specific errors (example for unique constraint)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // Unique violation
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}
