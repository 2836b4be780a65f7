package repository

import (
	"context"
	"time"

	"grab-service/internal/infra"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"
	"grab-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	DeleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteIdempotencyKeyParams) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

// TryInsert reports false when the key already exists for this user.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return inserted > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, db, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		UserID:        row.UserID,
		Endpoint:      row.Endpoint,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultClaimID: pgconv.UUIDPtrFromPgtype(row.ResultClaimID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID, responseHash string, claimID uuid.UUID) error {
	params := sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:              key,
		UserID:           userID,
		ResponseBodyHash: pgconv.StringToPgtype(responseHash),
		ResultClaimID:    pgconv.UUIDToPgtype(claimID),
	}

	err := r.queries.UpdateIdempotencyKeyCompleted(ctx, db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

// ClaimExpired takes over a key whose previous holder's window has passed.
func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	affected, err := r.queries.ClaimExpiredIdempotencyKey(ctx, db, sqlc.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return affected > 0, nil
}

// Release drops a key left in processing by a request that failed, so the
// client can retry with the same key.
func (r *IdempotencyRepository) Release(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID) error {
	err := r.queries.DeleteIdempotencyKey(ctx, db, sqlc.DeleteIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}
