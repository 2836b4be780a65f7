package notify

import (
	"context"
	"encoding/json"
	"time"

	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/clock"
	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/shared"
)

const jobKind = "notification"

type JobWriter interface {
	CreateJob(ctx context.Context, db sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// JobQueue stores notifications in notification_jobs for a separate worker to
// deliver. It writes on its own connection, never inside the caller's
// transaction.
type JobQueue struct {
	jobs  JobWriter
	db    sqlc.DBTX
	clock clock.Clock
}

func NewJobQueue(jobs JobWriter, db sqlc.DBTX, clk clock.Clock) *JobQueue {
	return &JobQueue{jobs: jobs, db: db, clock: clk}
}

func (q *JobQueue) Notify(ctx context.Context, n shared.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}
	if err := q.jobs.CreateJob(ctx, q.db, jobKind, n.Event, payload, q.clock.Now()); err != nil {
		return errs.Wrap(err, "failed to enqueue notification")
	}
	return nil
}
