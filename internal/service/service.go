// Package service holds the business rules: existence, ownership and state
// checks, the catalog pipeline, review aggregation and booking lifecycle.
//
// Services depend on small consumer-side interfaces rather than concrete
// repositories so they can be exercised with in-memory fakes.
package service

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/hotel-booking/internal/sqlerr"
)

// Enqueuer is the producer side of the job queue.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && sqlerr.MapCode(pgErr.Code) == sqlerr.UniqueViolation
}
