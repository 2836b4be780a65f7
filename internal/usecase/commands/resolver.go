package commands

import (
	"context"
	"time"

	"grab-service/internal/domain/offer"
	"grab-service/internal/infra"
	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferResolver struct{}

func NewOfferResolver() *OfferResolver {
	return &OfferResolver{}
}

// Resolve returns the offer only if it can be claimed at now. A rejection
// carries ErrNotClaimable marked onto the offer package's specific reason.
func (r *OfferResolver) Resolve(ctx context.Context, tx shared.Tx, offerID uuid.UUID, now time.Time) (*offer.Offer, error) {
	o, err := tx.Offers().FindByID(ctx, tx.DB(), offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := o.EnsureClaimable(now); err != nil {
		return nil, errs.Mark(err, ErrNotClaimable)
	}
	return o, nil
}
