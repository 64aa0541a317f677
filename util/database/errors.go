package database

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStoreUnavailable reports that a statement could not be completed even
// after the gateway's single connection-level retry.
var ErrStoreUnavailable = errors.New("store unavailable")

// IsStatementError reports whether err came back from the server as a
// response to the statement itself (bad SQL, constraint violation, ...).
// Statement errors are deterministic and must never be retried.
func IsStatementError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr)
}

// IsConnectionFailure reports whether err is a connection-level failure for
// which the whole acquire-execute cycle may be retried on a fresh
// connection. pgconn.SafeToRetry covers requests the driver never put on
// the wire; dial and transport errors cover the rest.
func IsConnectionFailure(err error) bool {
	if err == nil || IsStatementError(err) {
		return false
	}
	if pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	// Statement timeout: the pool discards the connection on cancellation.
	return errors.Is(err, context.DeadlineExceeded)
}

// IsUniqueViolation reports a duplicate-key rejection by the store.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation reports a write referencing a row that does not
// exist (or deleting one that is still referenced).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// IsConstraintViolation reports any integrity-constraint rejection.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)
}
