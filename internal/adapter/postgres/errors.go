package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"club-ads/internal/core/port"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// mapError translates driver errors into the port error vocabulary so
// callers never have to import pgx to classify a failure.
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, port.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %s: %w", what, pgErr.ConstraintName, port.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %s: %w", what, pgErr.ConstraintName, port.ErrNotFound)
		case pgCheckViolation:
			return fmt.Errorf("%s: %s: %w", what, pgErr.ConstraintName, port.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}
