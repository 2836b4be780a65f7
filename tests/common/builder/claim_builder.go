//go:build unit || e2e

package builder

import (
	"time"

	"grab-service/internal/domain/claim"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"
	"grab-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OfferID     uuid.UUID
	OfferTitle  string
	OfferKind   string
	Code        string
	IssuedAt    time.Time
	ExpiresAt   *time.Time
	ValidatedBy *uuid.UUID
	ValidatedAt *time.Time
	TokenCode   *string
}

func NewClaimBuilder() *ClaimBuilder {
	return &ClaimBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		OfferID:    uuid.New(),
		OfferTitle: "Free coffee",
		OfferKind:  "ad",
		Code:       "1016000001",
		IssuedAt:   time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ClaimBuilder) With(mutate func(*ClaimBuilder)) *ClaimBuilder {
	mutate(b)
	return b
}

func (b *ClaimBuilder) BuildDomain() *claim.Claim {
	return claim.Reconstruct(b.ID, b.UserID, b.OfferID, b.Code, b.IssuedAt, b.IssuedAt, b.ExpiresAt, b.ValidatedBy, b.ValidatedAt, nil)
}

func (b *ClaimBuilder) BuildInfra() sqlc.Claims {
	return sqlc.Claims{
		ID:          b.ID,
		UserID:      b.UserID,
		OfferID:     b.OfferID,
		Code:        b.Code,
		ReservedAt:  pgconv.TimeToPgtype(b.IssuedAt),
		IssuedAt:    pgconv.TimeToPgtype(b.IssuedAt),
		ExpiresAt:   pgconv.TimePtrToPgtype(b.ExpiresAt),
		ValidatedBy: pgconv.UUIDPtrToPgtype(b.ValidatedBy),
		ValidatedAt: pgconv.TimePtrToPgtype(b.ValidatedAt),
		CreatedAt:   pgconv.TimeToPgtype(b.IssuedAt),
	}
}

func (b *ClaimBuilder) BuildViewRow() sqlc.GetClaimViewByCodeRow {
	return sqlc.GetClaimViewByCodeRow{
		ID:          b.ID,
		UserID:      b.UserID,
		OfferID:     b.OfferID,
		Code:        b.Code,
		ReservedAt:  pgconv.TimeToPgtype(b.IssuedAt),
		IssuedAt:    pgconv.TimeToPgtype(b.IssuedAt),
		ExpiresAt:   pgconv.TimePtrToPgtype(b.ExpiresAt),
		ValidatedBy: pgconv.UUIDPtrToPgtype(b.ValidatedBy),
		ValidatedAt: pgconv.TimePtrToPgtype(b.ValidatedAt),
		OfferTitle:  b.OfferTitle,
		OfferKind:   b.OfferKind,
		TokenCode:   pgconv.StringPtrToPgtype(b.TokenCode),
	}
}

func (b *ClaimBuilder) BuildView() *queries.ClaimView {
	v := &queries.ClaimView{
		ID:          b.ID,
		UserID:      b.UserID,
		OfferID:     b.OfferID,
		OfferTitle:  b.OfferTitle,
		OfferKind:   b.OfferKind,
		Code:        b.Code,
		ReservedAt:  b.IssuedAt,
		IssuedAt:    b.IssuedAt,
		ExpiresAt:   b.ExpiresAt,
		ValidatedBy: b.ValidatedBy,
		ValidatedAt: b.ValidatedAt,
		TokenCode:   b.TokenCode,
	}
	v.ResolveStatus(b.IssuedAt)
	return v
}
