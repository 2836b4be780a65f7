//go:build unit || e2e

package builder

import (
	"time"

	"grab-service/internal/domain/offer"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID                  uuid.UUID
	Kind                offer.Kind
	Title               string
	Status              offer.Status
	Informational       bool
	OwnerUserID         uuid.UUID
	OrganizationID      *uuid.UUID
	VenueID             *uuid.UUID
	MaxGrab             *int
	Unlimited           bool
	Daily               bool
	StartAt             *time.Time
	EndAt               *time.Time
	MirrorCode          *string
	RedemptionMode      offer.RedemptionMode
	ValidationTimeLimit *time.Duration
	StockDebit          offer.StockDebit
}

// NewOfferBuilder returns a published ad with a lifetime cap of 10.
func NewOfferBuilder() *OfferBuilder {
	maxGrab := 10
	return &OfferBuilder{
		ID:             uuid.New(),
		Kind:           offer.KindAd,
		Title:          "Free coffee",
		Status:         offer.StatusPublished,
		OwnerUserID:    uuid.New(),
		MaxGrab:        &maxGrab,
		RedemptionMode: offer.RedemptionOffline,
		StockDebit:     offer.DebitOnClaim,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithCap(n int) *OfferBuilder {
	b.MaxGrab = &n
	return b
}

func (b *OfferBuilder) WithoutCap() *OfferBuilder {
	b.MaxGrab = nil
	return b
}

func (b *OfferBuilder) WithTimeLimit(d time.Duration) *OfferBuilder {
	b.ValidationTimeLimit = &d
	return b
}

func (b *OfferBuilder) WithMirror(code string) *OfferBuilder {
	b.MirrorCode = &code
	return b
}

func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	return offer.Reconstruct(offer.Params{
		ID:            b.ID,
		Kind:          b.Kind,
		Title:         b.Title,
		Status:        b.Status,
		Informational: b.Informational,
		Owner: offer.Owner{
			UserID:         b.OwnerUserID,
			OrganizationID: b.OrganizationID,
			VenueID:        b.VenueID,
		},
		MaxGrab:             b.MaxGrab,
		Unlimited:           b.Unlimited,
		Daily:               b.Daily,
		StartAt:             b.StartAt,
		EndAt:               b.EndAt,
		MirrorCode:          b.MirrorCode,
		RedemptionMode:      b.RedemptionMode,
		ValidationTimeLimit: b.ValidationTimeLimit,
		StockDebit:          b.StockDebit,
	})
}

// #nosec G115 -- test values are small
func (b *OfferBuilder) BuildInfra() sqlc.Offers {
	row := sqlc.Offers{
		ID:             b.ID,
		Kind:           string(b.Kind),
		Title:          b.Title,
		Status:         string(b.Status),
		IsInformation:  b.Informational,
		OwnerUserID:    b.OwnerUserID,
		OrganizationID: pgconv.UUIDPtrToPgtype(b.OrganizationID),
		VenueID:        pgconv.UUIDPtrToPgtype(b.VenueID),
		MaxGrab:        pgconv.IntPtrToPgtype(b.MaxGrab),
		Unlimited:      b.Unlimited,
		IsDaily:        b.Daily,
		StartAt:        pgconv.TimePtrToPgtype(b.StartAt),
		EndAt:          pgconv.TimePtrToPgtype(b.EndAt),
		MirrorCode:     pgconv.StringPtrToPgtype(b.MirrorCode),
		RedemptionMode: string(b.RedemptionMode),
		StockDebit:     string(b.StockDebit),
	}
	if b.ValidationTimeLimit != nil {
		minutes := int(b.ValidationTimeLimit.Minutes())
		row.ValidationTimeLimitMinutes = pgconv.IntPtrToPgtype(&minutes)
	}
	return row
}
