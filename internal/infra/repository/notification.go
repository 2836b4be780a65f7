package repository

import (
	"context"
	"time"

	"grab-service/internal/infra"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"
)

const notificationStatusQueued = "queued"

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, db sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  notificationStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
