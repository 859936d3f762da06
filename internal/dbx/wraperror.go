package dbx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// WrapError classifies a database error for the service layer.
//
// A *pgconn.PgError means the server reached PostgreSQL and the statement
// itself failed (constraint violation, bad query); that stays an internal
// "db error". Context cancellation passes through unchanged. Everything else
// (dial failures, broken connections) is treated as a transient outage and
// joined to common.ErrorUnavailable so callers can decide on retry policy.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("db error: %w", err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
}
