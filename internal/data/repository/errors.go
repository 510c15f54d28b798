// Package repository holds the pgx-backed stores plus the sentinel error
// values shared across them. Higher layers match these with errors.Is to
// decide how a failed operation surfaces to the caller: a missing row, a
// dangling foreign key, a name collision, or a seat already claimed.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when an id-based lookup resolves to nothing.
var ErrNotFound = errors.New("not found")

// ErrReferenceNotFound is returned when a write names a parent entity
// (movie, room, session) that does not exist.
var ErrReferenceNotFound = errors.New("referenced entity not found")

// ErrDuplicateName is returned when a room or movie name collides with an
// existing row. The unique index is the final guard; pre-checks in the
// service layer only make the common case fail before the insert.
var ErrDuplicateName = errors.New("name already exists")

// ErrSeatTaken is returned when a reservation claims a (session, seat)
// pair that already has a row. Enforced by the unique constraint, so two
// concurrent claims on the same seat cannot both succeed.
var ErrSeatTaken = errors.New("seat already reserved for this session")

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a Postgres foreign-key
// violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
