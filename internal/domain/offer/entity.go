package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInactive      = errors.New("offer is not published")
	ErrInformational = errors.New("offer is an information-only listing")
	ErrOutsideWindow = errors.New("offer is outside its active window")
	ErrInvalidCap    = errors.New("max grab cannot be negative")
	ErrInvalidWindow = errors.New("start must not be after end")
)

// Offer is the normalized shape of an ad, promo or voucher as seen by the
// allocation engine, regardless of which record answered the lookup.
type Offer struct {
	id                  uuid.UUID
	kind                Kind
	title               string
	status              Status
	informational       bool
	owner               Owner
	maxGrab             *int
	unlimited           bool
	daily               bool
	window              Window
	mirrorCode          *string
	redemptionMode      RedemptionMode
	validationTimeLimit *time.Duration
	stockDebit          StockDebit
}

type Params struct {
	ID                  uuid.UUID
	Kind                Kind
	Title               string
	Status              Status
	Informational       bool
	Owner               Owner
	MaxGrab             *int
	Unlimited           bool
	Daily               bool
	StartAt             *time.Time
	EndAt               *time.Time
	MirrorCode          *string
	RedemptionMode      RedemptionMode
	ValidationTimeLimit *time.Duration
	StockDebit          StockDebit
}

func Reconstruct(p Params) (*Offer, error) {
	if p.MaxGrab != nil && *p.MaxGrab < 0 {
		return nil, ErrInvalidCap
	}
	window, err := NewWindow(p.StartAt, p.EndAt)
	if err != nil {
		return nil, err
	}
	if !p.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	mode := p.RedemptionMode
	if mode == "" {
		mode = RedemptionOffline
	}
	debit := p.StockDebit
	if debit == "" {
		debit = DebitOnClaim
	}

	return &Offer{
		id:                  p.ID,
		kind:                p.Kind,
		title:               p.Title,
		status:              p.Status,
		informational:       p.Informational,
		owner:               p.Owner,
		maxGrab:             p.MaxGrab,
		unlimited:           p.Unlimited,
		daily:               p.Daily,
		window:              window,
		mirrorCode:          p.MirrorCode,
		redemptionMode:      mode,
		validationTimeLimit: p.ValidationTimeLimit,
		stockDebit:          debit,
	}, nil
}

// EnsureClaimable runs the resolver checks in order: published, not
// informational, inside the active window.
func (o *Offer) EnsureClaimable(now time.Time) error {
	if o.status != StatusPublished {
		return ErrInactive
	}
	if o.informational {
		return ErrInformational
	}
	if !o.window.Contains(now) {
		return ErrOutsideWindow
	}
	return nil
}

// ExpiresAt returns nil when the offer sets no validation time limit.
func (o *Offer) ExpiresAt(issuedAt time.Time) *time.Time {
	if o.validationTimeLimit == nil {
		return nil
	}
	t := issuedAt.Add(*o.validationTimeLimit)
	return &t
}

func (o *Offer) IssuesToken() bool {
	return o.redemptionMode == RedemptionOnline
}

func (o *Offer) DebitsOnClaim() bool {
	return o.stockDebit == DebitOnClaim
}

func (o *Offer) ID() uuid.UUID                       { return o.id }
func (o *Offer) Kind() Kind                          { return o.kind }
func (o *Offer) Title() string                       { return o.title }
func (o *Offer) Status() Status                      { return o.status }
func (o *Offer) IsInformational() bool               { return o.informational }
func (o *Offer) Owner() Owner                        { return o.owner }
func (o *Offer) MaxGrab() *int                       { return o.maxGrab }
func (o *Offer) IsUnlimited() bool                   { return o.unlimited }
func (o *Offer) IsDaily() bool                       { return o.daily }
func (o *Offer) Window() Window                      { return o.window }
func (o *Offer) MirrorCode() *string                 { return o.mirrorCode }
func (o *Offer) RedemptionMode() RedemptionMode      { return o.redemptionMode }
func (o *Offer) ValidationTimeLimit() *time.Duration { return o.validationTimeLimit }
func (o *Offer) StockDebit() StockDebit              { return o.stockDebit }
