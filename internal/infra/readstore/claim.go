package readstore

import (
	"context"
	"time"

	"grab-service/internal/infra"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"
	"grab-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClaimViewQueries interface {
	GetClaimViewByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetClaimViewByCodeRow, error)
	GetClaimViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetClaimViewByIDRow, error)
	ListClaimViewsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClaimViewsByUserParams) ([]sqlc.ListClaimViewsByUserRow, error)
}

type ClaimReadStore struct {
	queries ClaimViewQueries
	db      sqlc.DBTX
}

func NewClaimReadStore(queries ClaimViewQueries, db sqlc.DBTX) *ClaimReadStore {
	return &ClaimReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClaimReadStore) FindByCode(ctx context.Context, code string) (*queries.ClaimView, error) {
	row, err := r.queries.GetClaimViewByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get claim view by code", err)
	}
	return claimViewFromRow(row), nil
}

func (r *ClaimReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClaimView, error) {
	row, err := r.queries.GetClaimViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get claim view by id", err)
	}
	return claimViewFromRow(sqlc.GetClaimViewByCodeRow(row)), nil
}

func (r *ClaimReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ClaimView, error) {
	return r.list(ctx, sqlc.ListClaimViewsByUserParams{
		UserID:   userID,
		RowLimit: limit,
	})
}

func (r *ClaimReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastIssuedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ClaimView, error) {
	return r.list(ctx, sqlc.ListClaimViewsByUserParams{
		UserID:        userID,
		AfterIssuedAt: pgconv.TimeToPgtype(lastIssuedAt),
		AfterID:       pgtype.UUID{Bytes: lastID, Valid: true},
		RowLimit:      limit,
	})
}

func (r *ClaimReadStore) list(ctx context.Context, params sqlc.ListClaimViewsByUserParams) ([]*queries.ClaimView, error) {
	rows, err := r.queries.ListClaimViewsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims by user", err)
	}

	views := make([]*queries.ClaimView, 0, len(rows))
	for _, row := range rows {
		views = append(views, claimViewFromRow(sqlc.GetClaimViewByCodeRow(row)))
	}
	return views, nil
}

// The three claim view queries select identical columns, so their row types
// convert to one another.
func claimViewFromRow(row sqlc.GetClaimViewByCodeRow) *queries.ClaimView {
	return &queries.ClaimView{
		ID:          row.ID,
		UserID:      row.UserID,
		OfferID:     row.OfferID,
		OfferTitle:  row.OfferTitle,
		OfferKind:   row.OfferKind,
		Code:        row.Code,
		ReservedAt:  pgconv.TimeFromPgtype(row.ReservedAt),
		IssuedAt:    pgconv.TimeFromPgtype(row.IssuedAt),
		ExpiresAt:   pgconv.TimePtrFromPgtype(row.ExpiresAt),
		ValidatedBy: pgconv.UUIDPtrFromPgtype(row.ValidatedBy),
		ValidatedAt: pgconv.TimePtrFromPgtype(row.ValidatedAt),
		TokenCode:   pgconv.StringPtrFromPgtype(row.TokenCode),
	}
}
