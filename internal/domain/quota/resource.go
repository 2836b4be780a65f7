package quota

import (
	"time"

	"grab-service/internal/domain/offer"

	"github.com/google/uuid"
)

type ResourceKind string

const (
	// KindDailyCounter caps today's DailyCounter row for the offer.
	KindDailyCounter ResourceKind = "daily_counter"
	// KindLifetimeCounter caps the sum of every DailyCounter row of the offer
	// and records the unit on today's row.
	KindLifetimeCounter ResourceKind = "lifetime_counter"
	// KindMirroredStock is the nullable stock column of a linked promo record.
	KindMirroredStock ResourceKind = "mirrored_stock"
)

// Resource identifies one piece of contended inventory. Cap is nil when the
// resource is unbounded.
type Resource struct {
	Kind    ResourceKind
	OfferID uuid.UUID
	Day     time.Time
	Cap     *int
	Code    string
}

// Day truncates t to the calendar day in loc. The result carries no time
// component and is what DailyCounter rows are keyed by.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Plan lists the resources that must all be consumed for one unit of o.
// An unlimited offer needs nothing.
func Plan(o *offer.Offer, now time.Time, loc *time.Location) []Resource {
	if o.IsUnlimited() {
		return nil
	}

	day := Day(now, loc)
	primary := Resource{
		Kind:    KindLifetimeCounter,
		OfferID: o.ID(),
		Day:     day,
		Cap:     o.MaxGrab(),
	}
	if o.IsDaily() {
		primary.Kind = KindDailyCounter
	}

	resources := []Resource{primary}
	if mc := o.MirrorCode(); mc != nil && *mc != "" {
		resources = append(resources, Resource{
			Kind: KindMirroredStock,
			Code: *mc,
		})
	}
	return resources
}

// Exhausted reports whether a bounded resource can never accept amount units
// regardless of its stored value.
func (r Resource) Exhausted(amount int) bool {
	return r.Cap != nil && *r.Cap < amount
}
