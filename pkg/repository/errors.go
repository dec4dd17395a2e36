package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error class 23 covers integrity constraint violations:
// unique (23505), foreign key (23503), not null (23502).
const pgConstraintClass = "23"

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr and any PostgreSQL integrity
// constraint violation to constraintErr. Other errors are returned unchanged.
func MapError(err error, notFoundErr, constraintErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgConstraintClass) {
		return constraintErr
	}

	return err
}
