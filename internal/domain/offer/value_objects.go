package offer

import (
	"time"

	"github.com/google/uuid"
)

// Window is the optional [start, end] activity range; a nil bound is open.
type Window struct {
	start *time.Time
	end   *time.Time
}

func NewWindow(start, end *time.Time) (Window, error) {
	if start != nil && end != nil && start.After(*end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Contains(t time.Time) bool {
	if w.start != nil && t.Before(*w.start) {
		return false
	}
	if w.end != nil && t.After(*w.end) {
		return false
	}
	return true
}

func (w Window) Start() *time.Time { return w.start }
func (w Window) End() *time.Time   { return w.end }

// Owner is the reference chain used to authorize validators.
type Owner struct {
	UserID         uuid.UUID
	OrganizationID *uuid.UUID
	VenueID        *uuid.UUID
}
