package converter

import (
	"grab-service/internal/domain/claim"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"
)

func ClaimToInsertParams(c *claim.Claim) sqlc.InsertClaimParams {
	return sqlc.InsertClaimParams{
		ID:         c.ID(),
		UserID:     c.UserID(),
		OfferID:    c.OfferID(),
		Code:       c.Code(),
		ReservedAt: pgconv.TimeToPgtype(c.ReservedAt()),
		IssuedAt:   pgconv.TimeToPgtype(c.IssuedAt()),
		ExpiresAt:  pgconv.TimePtrToPgtype(c.ExpiresAt()),
	}
}

func ClaimFromRow(row sqlc.Claims) *claim.Claim {
	return claim.Reconstruct(
		row.ID,
		row.UserID,
		row.OfferID,
		row.Code,
		pgconv.TimeFromPgtype(row.ReservedAt),
		pgconv.TimeFromPgtype(row.IssuedAt),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.UUIDPtrFromPgtype(row.ValidatedBy),
		pgconv.TimePtrFromPgtype(row.ValidatedAt),
		pgconv.UUIDPtrFromPgtype(row.TokenID),
	)
}

func TokenToInsertParams(t *claim.RedemptionToken) sqlc.InsertRedemptionTokenParams {
	return sqlc.InsertRedemptionTokenParams{
		ID:        t.ID(),
		UserID:    t.UserID(),
		ClaimID:   t.ClaimID(),
		Code:      t.Code(),
		CreatedAt: pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

func TokenFromRow(row sqlc.RedemptionTokens) *claim.RedemptionToken {
	return claim.ReconstructToken(
		row.ID,
		row.UserID,
		row.ClaimID,
		row.Code,
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
