package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TargetType string

const (
	TargetUser         TargetType = "user"
	TargetOrganization TargetType = "organization"
	TargetVenue        TargetType = "venue"
)

const (
	EventClaimIssued    = "claim.issued"
	EventClaimValidated = "claim.validated"
)

// Notification is addressed to exactly one entity. Delivery is best effort.
type Notification struct {
	Event      string     `json:"event"`
	TargetType TargetType `json:"target_type"`
	TargetID   uuid.UUID  `json:"target_id"`
	ClaimID    uuid.UUID  `json:"claim_id"`
	OfferID    uuid.UUID  `json:"offer_id"`
	Message    string     `json:"message"`
	OccurredAt time.Time  `json:"occurred_at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
