package response

import (
	"time"

	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClaimResponse struct {
	ID          uuid.UUID  `json:"id"`
	OfferID     uuid.UUID  `json:"offer_id"`
	OfferTitle  string     `json:"offer_title"`
	OfferKind   string     `json:"offer_kind"`
	Code        string     `json:"code"`
	Status      string     `json:"status"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ValidatedBy *uuid.UUID `json:"validated_by,omitempty"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	TokenCode   *string    `json:"token_code,omitempty"`
}

type ClaimListResponse struct {
	Items      []*ClaimResponse `json:"items"`
	NextCursor *string          `json:"next_cursor,omitempty"`
}

func FromClaimView(v *queries.ClaimView) (*ClaimResponse, error) {
	if v == nil {
		return nil, errs.New("claim view is nil")
	}
	res := &ClaimResponse{}
	// fields share names with the view; Status converts from its named type
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map claim view")
	}
	return res, nil
}

func FromClaimViews(views []*queries.ClaimView, next *queries.Cursor) (*ClaimListResponse, error) {
	items := make([]*ClaimResponse, len(views))
	for i, v := range views {
		item, err := FromClaimView(v)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	res := &ClaimListResponse{Items: items}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res, nil
}
