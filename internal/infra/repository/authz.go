package repository

import (
	"context"

	"grab-service/internal/infra"
	sqlc "grab-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AuthzQueries interface {
	IsOrganizationMember(ctx context.Context, db sqlc.DBTX, arg sqlc.IsOrganizationMemberParams) (bool, error)
	IsVenueOperator(ctx context.Context, db sqlc.DBTX, arg sqlc.IsVenueOperatorParams) (bool, error)
}

type AuthzRepository struct {
	queries AuthzQueries
}

func NewAuthzRepository(queries AuthzQueries) *AuthzRepository {
	return &AuthzRepository{queries: queries}
}

func (r *AuthzRepository) IsOrganizationMember(ctx context.Context, db sqlc.DBTX, organizationID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.IsOrganizationMember(ctx, db, sqlc.IsOrganizationMemberParams{
		OrganizationID: organizationID,
		UserID:         userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check organization membership", err)
	}
	return ok, nil
}

func (r *AuthzRepository) IsVenueOperator(ctx context.Context, db sqlc.DBTX, venueID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.IsVenueOperator(ctx, db, sqlc.IsVenueOperatorParams{
		VenueID: venueID,
		UserID:  userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check venue operator", err)
	}
	return ok, nil
}
