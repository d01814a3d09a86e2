package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505" // unique constraint violation
	foreignKeyViolationCode = "23503" // foreign key constraint violation
)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a duplicate email address or a second
// review for the same booking.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// isForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key violation, meaning a referenced row does not exist.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
