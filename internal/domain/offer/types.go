package offer

import "errors"

var (
	ErrInvalidKind   = errors.New("invalid offer kind")
	ErrInvalidStatus = errors.New("invalid offer status")
)

type Kind string

const (
	KindAd      Kind = "ad"
	KindPromo   Kind = "promo"
	KindVoucher Kind = "voucher"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindAd, KindPromo, KindVoucher:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

type RedemptionMode string

const (
	RedemptionOffline RedemptionMode = "offline"
	RedemptionOnline  RedemptionMode = "online"
)

// StockDebit decides whether inventory is taken when the claim is issued or
// when it is redeemed.
type StockDebit string

const (
	DebitOnClaim  StockDebit = "on_claim"
	DebitOnRedeem StockDebit = "on_redeem"
)
