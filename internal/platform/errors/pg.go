package errors

// Postgres helpers for classifying lexicon store failures

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes a read-only lexicon query can hit
const (
	pgErrUndefinedTable            = "42P01"
	pgErrUndefinedColumn           = "42703"
	pgErrInsufficientPrivilege     = "42501"
	pgErrInvalidTextRepresentation = "22P02"
	pgErrCharacterNotInRepertoire  = "22021"
	pgErrQueryCanceled             = "57014"
	pgErrAdminShutdown             = "57P01"
	pgErrCannotConnectNow          = "57P03"
	pgErrTooManyConnections        = "53300"
	pgErrSerializationFailure      = "40001"
	pgErrDeadlockDetected          = "40P01"
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsUndefinedRelation reports a missing lexicon table or column
func IsUndefinedRelation(err error) bool {
	return IsSQLState(err, pgErrUndefinedTable) || IsSQLState(err, pgErrUndefinedColumn)
}

// DBErrorCode maps a Postgres error to an ErrorCode; !ok means err wasn't a PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}

	switch pgErr.Code {
	case pgErrUndefinedTable, pgErrUndefinedColumn:
		return ErrorCodeNotFound, true
	case pgErrInvalidTextRepresentation, pgErrCharacterNotInRepertoire:
		// the looked-up word cannot be encoded for the column
		return ErrorCodeInvalidArgument, true
	case pgErrQueryCanceled, pgErrAdminShutdown, pgErrCannotConnectNow, pgErrTooManyConnections:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with a mapped ErrorCode and message; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is the formatted variant of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// FromPostgresWithField wraps like FromPostgres and attaches the column name
// reported by the server, if any
func FromPostgresWithField(err error, msg string) error {
	out := FromPostgres(err, msg)
	if pgErr, ok := ExtractPgError(err); ok {
		if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
			return WithField(out, col)
		}
	}
	return out
}

// IsRetryable reports whether a database error is transient. It checks
// SQLSTATE codes first, then the driver text seen when a connection drops
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// local cancellation is the caller's decision
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}

	root := Root(err)

	var pgErr *pgconn.PgError
	if stderrs.As(root, &pgErr) {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrCannotConnectNow,
			pgErrAdminShutdown, pgErrTooManyConnections:
			return true
		default:
			return false
		}
	}

	s := strings.ToLower(root.Error())
	switch {
	case strings.Contains(s, "conn closed"),
		strings.Contains(s, "connection reset by peer"),
		strings.Contains(s, "broken pipe"),
		strings.Contains(s, "canceling statement due to statement timeout"),
		strings.Contains(s, "terminating connection due to administrator command"):
		return true
	default:
		return false
	}
}
