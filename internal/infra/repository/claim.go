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

type ClaimWriteQueries interface {
	InsertClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertClaimParams) (uuid.UUID, error)
	HasOutstandingClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.HasOutstandingClaimParams) (bool, error)
	GetOutstandingClaimByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Claims, error)
	MarkClaimValidated(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkClaimValidatedParams) (int64, error)
	SetClaimToken(ctx context.Context, db sqlc.DBTX, arg sqlc.SetClaimTokenParams) error
	GetLatestClaimCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestClaimCodeParams) (string, error)
	ClaimCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
}

type ClaimRepository struct {
	queries ClaimWriteQueries
}

func NewClaimRepository(queries ClaimWriteQueries) *ClaimRepository {
	return &ClaimRepository{queries: queries}
}

func (r *ClaimRepository) HasOutstanding(ctx context.Context, db sqlc.DBTX, userID, offerID uuid.UUID) (bool, error) {
	held, err := r.queries.HasOutstandingClaim(ctx, db, sqlc.HasOutstandingClaimParams{
		UserID:  userID,
		OfferID: offerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check outstanding claim", err)
	}
	return held, nil
}

func (r *ClaimRepository) Insert(ctx context.Context, db sqlc.DBTX, c *claim.Claim) (bool, error) {
	_, err := r.queries.InsertClaim(ctx, db, converter.ClaimToInsertParams(c))
	if err != nil {
		// ON CONFLICT (code) DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert claim", err)
	}
	return true, nil
}

func (r *ClaimRepository) FindOutstandingByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (*claim.Claim, error) {
	row, err := r.queries.GetOutstandingClaimByCodeForUpdate(ctx, db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("outstanding claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get claim by code", err)
	}
	return converter.ClaimFromRow(row), nil
}

func (r *ClaimRepository) MarkValidated(ctx context.Context, db sqlc.DBTX, c *claim.Claim) error {
	params := sqlc.MarkClaimValidatedParams{
		ID:          c.ID(),
		ValidatedBy: pgconv.UUIDPtrToPgtype(c.ValidatedBy()),
		ValidatedAt: pgconv.TimePtrToPgtype(c.ValidatedAt()),
	}

	affected, err := r.queries.MarkClaimValidated(ctx, db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark claim validated", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("claim already validated", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClaimRepository) AttachToken(ctx context.Context, db sqlc.DBTX, claimID, tokenID uuid.UUID) error {
	err := r.queries.SetClaimToken(ctx, db, sqlc.SetClaimTokenParams{
		ID:      claimID,
		TokenID: pgconv.UUIDToPgtype(tokenID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach redemption token", err)
	}
	return nil
}

// #nosec G115 -- code lengths are small
func (r *ClaimRepository) LatestCode(ctx context.Context, db sqlc.DBTX, prefix string, length int) (string, error) {
	code, err := r.queries.GetLatestClaimCode(ctx, db, sqlc.GetLatestClaimCodeParams{
		Prefix:     prefix,
		CodeLength: int32(length),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to get latest claim code", err)
	}
	return code, nil
}

func (r *ClaimRepository) CodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error) {
	exists, err := r.queries.ClaimCodeExists(ctx, db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check claim code", err)
	}
	return exists, nil
}
