package request

import "github.com/google/uuid"

type ClaimRequest struct {
	OfferID uuid.UUID `json:"offerId" binding:"required"`
}

type ValidateClaimRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

// Limit is nil when absent; an explicit 0 fails min=1.
type ListClaimsQuery struct {
	Limit *int   `form:"limit" binding:"omitempty,min=1,max=100"`
	After string `form:"after"`
}
