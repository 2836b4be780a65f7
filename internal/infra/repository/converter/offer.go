package converter

import (
	"grab-service/internal/domain/offer"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"
)

func OfferFromRow(row sqlc.Offers) (*offer.Offer, error) {
	return offer.Reconstruct(offer.Params{
		ID:            row.ID,
		Kind:          offer.Kind(row.Kind),
		Title:         row.Title,
		Status:        offer.Status(row.Status),
		Informational: row.IsInformation,
		Owner: offer.Owner{
			UserID:         row.OwnerUserID,
			OrganizationID: pgconv.UUIDPtrFromPgtype(row.OrganizationID),
			VenueID:        pgconv.UUIDPtrFromPgtype(row.VenueID),
		},
		MaxGrab:             pgconv.IntPtrFromPgtype(row.MaxGrab),
		Unlimited:           row.Unlimited,
		Daily:               row.IsDaily,
		StartAt:             pgconv.TimePtrFromPgtype(row.StartAt),
		EndAt:               pgconv.TimePtrFromPgtype(row.EndAt),
		MirrorCode:          pgconv.StringPtrFromPgtype(row.MirrorCode),
		RedemptionMode:      offer.RedemptionMode(row.RedemptionMode),
		ValidationTimeLimit: pgconv.MinutesPtrFromPgtype(row.ValidationTimeLimitMinutes),
		StockDebit:          offer.StockDebit(row.StockDebit),
	})
}
