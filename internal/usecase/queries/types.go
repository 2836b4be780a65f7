package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrClaimNotFound = errors.New("claim not found")
	ErrClaimAccess   = errors.New("claim belongs to another user")
	ErrInvalidCursor = errors.New("invalid cursor")
)

type ClaimStatus string

const (
	ClaimStatusIssued    ClaimStatus = "issued"
	ClaimStatusValidated ClaimStatus = "validated"
	ClaimStatusExpired   ClaimStatus = "expired"
)

// ClaimView represents read-optimized claim data joined with its offer.
// Status is derived at read time; nothing in storage marks a claim expired.
type ClaimView struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	OfferID     uuid.UUID   `json:"offer_id"`
	OfferTitle  string      `json:"offer_title"`
	OfferKind   string      `json:"offer_kind"`
	Code        string      `json:"code"`
	Status      ClaimStatus `json:"status"`
	ReservedAt  time.Time   `json:"reserved_at"`
	IssuedAt    time.Time   `json:"issued_at"`
	ExpiresAt   *time.Time  `json:"expires_at,omitempty"`
	ValidatedBy *uuid.UUID  `json:"validated_by,omitempty"`
	ValidatedAt *time.Time  `json:"validated_at,omitempty"`
	TokenCode   *string     `json:"token_code,omitempty"`
}

// ResolveStatus fills Status as of now.
func (v *ClaimView) ResolveStatus(now time.Time) {
	switch {
	case v.ValidatedAt != nil:
		v.Status = ClaimStatusValidated
	case v.ExpiresAt != nil && now.After(*v.ExpiresAt):
		v.Status = ClaimStatusExpired
	default:
		v.Status = ClaimStatusIssued
	}
}
