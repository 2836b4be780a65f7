package commands

import (
	"context"
	"time"

	"grab-service/internal/domain/offer"
	"grab-service/internal/domain/quota"
	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/shared"
)

// QuotaLedger decides whether one more unit of an offer may be taken. It
// keeps no totals of its own; every decision is made by the store inside the
// caller's transaction, and a partial success (primary counter taken,
// mirrored stock refused) is undone when that transaction rolls back.
type QuotaLedger struct {
	loc *time.Location
}

func NewQuotaLedger(loc *time.Location) *QuotaLedger {
	if loc == nil {
		loc = time.UTC
	}
	return &QuotaLedger{loc: loc}
}

func (l *QuotaLedger) TryConsume(ctx context.Context, tx shared.Tx, o *offer.Offer, now time.Time) (bool, error) {
	for _, res := range quota.Plan(o, now, l.loc) {
		ok, err := tx.Inventory().TryConsume(ctx, tx.DB(), res, 1)
		if err != nil {
			return false, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
