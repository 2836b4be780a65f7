package repository

import (
	"context"

	"grab-service/internal/domain/claim"
	"grab-service/internal/infra"
	"grab-service/internal/infra/repository/converter"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TokenWriteQueries interface {
	InsertRedemptionToken(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRedemptionTokenParams) (uuid.UUID, error)
	GetLatestTokenCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestTokenCodeParams) (string, error)
	TokenCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
	GetRedemptionTokenForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RedemptionTokens, error)
	MarkRedemptionTokenUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkRedemptionTokenUsedParams) (int64, error)
}

type TokenRepository struct {
	queries TokenWriteQueries
}

func NewTokenRepository(queries TokenWriteQueries) *TokenRepository {
	return &TokenRepository{queries: queries}
}

func (r *TokenRepository) Insert(ctx context.Context, db sqlc.DBTX, t *claim.RedemptionToken) (bool, error) {
	_, err := r.queries.InsertRedemptionToken(ctx, db, converter.TokenToInsertParams(t))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert redemption token", err)
	}
	return true, nil
}

// #nosec G115 -- code lengths are small
func (r *TokenRepository) LatestCode(ctx context.Context, db sqlc.DBTX, prefix string, length int) (string, error) {
	code, err := r.queries.GetLatestTokenCode(ctx, db, sqlc.GetLatestTokenCodeParams{
		Prefix:     prefix,
		CodeLength: int32(length),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to get latest token code", err)
	}
	return code, nil
}

func (r *TokenRepository) CodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error) {
	exists, err := r.queries.TokenCodeExists(ctx, db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check token code", err)
	}
	return exists, nil
}

func (r *TokenRepository) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*claim.RedemptionToken, error) {
	row, err := r.queries.GetRedemptionTokenForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get redemption token", err)
	}
	return converter.TokenFromRow(row), nil
}

// MarkUsed reports KindNotFound when the token was consumed concurrently.
func (r *TokenRepository) MarkUsed(ctx context.Context, db sqlc.DBTX, t *claim.RedemptionToken) error {
	affected, err := r.queries.MarkRedemptionTokenUsed(ctx, db, sqlc.MarkRedemptionTokenUsedParams{
		ID:     t.ID(),
		UsedAt: pgconv.TimePtrToPgtype(t.UsedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark redemption token used", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("redemption token already used", nil, infra.KindNotFound)
	}
	return nil
}
