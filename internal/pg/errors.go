package pg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
	classConnectionException = "08"
)

// IsTransient reports whether err is a store failure that may succeed when
// the statement is issued again.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable,
			codeAdminShutdown, codeCannotConnectNow:
			return true
		}
		return strings.HasPrefix(pgErr.Code, classConnectionException)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if isConnectionLost(err) {
		return true
	}
	return pgconn.SafeToRetry(err) || pgconn.Timeout(err)
}

// isConnectionLost matches a connection that went away after the statement
// was sent. pgx reports these as plain I/O errors.
func isConnectionLost(err error) bool {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "conn closed") || strings.Contains(msg, "failed to receive message")
}

// IsUniqueViolation reports whether err was raised by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// Classify maps driver errors onto the domain taxonomy. Errors that already
// carry a domain sentinel, and unknown errors, are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrUnavailable):
		return err
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	case IsTransient(err):
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return err
}

// ReadWithRetry runs a read once more when it fails on a transient store
// error. Inside a transaction the first error is final: the transaction is
// already aborted.
func ReadWithRetry(ctx context.Context, read func(ctx context.Context) error) error {
	err := read(ctx)
	if err == nil || InTx(ctx) || !IsTransient(err) || ctx.Err() != nil {
		if IsTransient(err) {
			return Classify(err)
		}
		return err
	}
	zap.L().Warn("retrying read after transient store error", zap.Error(err))
	return Classify(read(ctx))
}
