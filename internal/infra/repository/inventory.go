package repository

import (
	"context"
	"fmt"

	"grab-service/internal/domain/quota"
	"grab-service/internal/infra"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	TryIncrementDailyCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.TryIncrementDailyCounterParams) (int32, error)
	IncrementDailyCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementDailyCounterParams) (int32, error)
	SumDailyCounters(ctx context.Context, db sqlc.DBTX, offerID uuid.UUID) (int32, error)
	LockOffer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	TryDecrementPromoStock(ctx context.Context, db sqlc.DBTX, arg sqlc.TryDecrementPromoStockParams) (bool, error)
}

// InventoryRepository is the only writer of daily_counters and promo_stocks.
// Every method is a single conditional statement or runs under a row lock,
// so it is safe to call from concurrent transactions.
type InventoryRepository struct {
	queries InventoryQueries
}

func NewInventoryRepository(queries InventoryQueries) *InventoryRepository {
	return &InventoryRepository{queries: queries}
}

func (r *InventoryRepository) TryConsume(ctx context.Context, db sqlc.DBTX, res quota.Resource, amount int) (bool, error) {
	if amount <= 0 {
		return false, infra.WrapRepoErr(fmt.Sprintf("invalid consume amount %d", amount), nil)
	}
	if res.Exhausted(amount) {
		return false, nil
	}

	switch res.Kind {
	case quota.KindDailyCounter:
		return r.consumeDaily(ctx, db, res, amount)
	case quota.KindLifetimeCounter:
		return r.consumeLifetime(ctx, db, res, amount)
	case quota.KindMirroredStock:
		return r.consumeStock(ctx, db, res, amount)
	default:
		return false, infra.WrapRepoErr(fmt.Sprintf("unknown resource kind %q", res.Kind), nil)
	}
}

// #nosec G115 -- amount and cap fit INTEGER columns
func (r *InventoryRepository) consumeDaily(ctx context.Context, db sqlc.DBTX, res quota.Resource, amount int) (bool, error) {
	_, err := r.queries.TryIncrementDailyCounter(ctx, db, sqlc.TryIncrementDailyCounterParams{
		OfferID: res.OfferID,
		Day:     pgconv.DateToPgtype(res.Day),
		Amount:  int32(amount),
		Cap:     pgconv.IntPtrToPgtype(res.Cap),
	})
	if err != nil {
		// the upsert's WHERE rejected the update
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to increment daily counter", err)
	}
	return true, nil
}

// #nosec G115 -- amount fits an INTEGER column
func (r *InventoryRepository) consumeLifetime(ctx context.Context, db sqlc.DBTX, res quota.Resource, amount int) (bool, error) {
	// Serializes lifetime consumers of one offer; the sum below is only
	// meaningful while the lock is held.
	if _, err := r.queries.LockOffer(ctx, db, res.OfferID); err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to lock offer", err)
	}

	if res.Cap != nil {
		consumed, err := r.queries.SumDailyCounters(ctx, db, res.OfferID)
		if err != nil {
			return false, infra.WrapRepoErr("failed to sum daily counters", err)
		}
		if int(consumed)+amount > *res.Cap {
			return false, nil
		}
	}

	_, err := r.queries.IncrementDailyCounter(ctx, db, sqlc.IncrementDailyCounterParams{
		OfferID: res.OfferID,
		Day:     pgconv.DateToPgtype(res.Day),
		Amount:  int32(amount),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment daily counter", err)
	}
	return true, nil
}

// #nosec G115 -- amount fits an INTEGER column
func (r *InventoryRepository) consumeStock(ctx context.Context, db sqlc.DBTX, res quota.Resource, amount int) (bool, error) {
	ok, err := r.queries.TryDecrementPromoStock(ctx, db, sqlc.TryDecrementPromoStockParams{
		Amount: int32(amount),
		Code:   res.Code,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement promo stock", err)
	}
	return ok, nil
}
