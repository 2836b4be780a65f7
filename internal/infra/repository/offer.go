package repository

import (
	"context"

	"grab-service/internal/domain/offer"
	"grab-service/internal/infra"
	"grab-service/internal/infra/repository/converter"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferQueries interface {
	GetOfferByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Offers, error)
}

type OfferRepository struct {
	queries OfferQueries
}

func NewOfferRepository(queries OfferQueries) *OfferRepository {
	return &OfferRepository{queries: queries}
}

func (r *OfferRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer by id", err)
	}

	o, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored offer is malformed", err)
	}
	return o, nil
}
