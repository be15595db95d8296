package progress

import (
	"context"

	"github.com/google/uuid"
)

// Kind names the operation an event reports on
type Kind string

const (
	KindContactValidation Kind = "contact_validation"
	KindCampaign          Kind = "campaign"
)

// Status values
const (
	StatusValidating = "validating"
	StatusRunning    = "running"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusError      = "error"
)

// Event is one progress update
type Event struct {
	Kind           Kind       `json:"kind"`
	CompanyID      uuid.UUID  `json:"company_id"`
	ContactListID  *uuid.UUID `json:"contact_list_id,omitempty"`
	CampaignID     *uuid.UUID `json:"campaign_id,omitempty"`
	Current        int        `json:"current"`
	Total          int        `json:"total"`
	Percentage     int        `json:"percentage"`
	CurrentContact string     `json:"current_contact,omitempty"`
	Status         string     `json:"status"`
}

// NewEvent builds an event with the percentage derived from current/total
func NewEvent(kind Kind, companyID uuid.UUID, current, total int, currentContact, status string) Event {
	return Event{
		Kind:           kind,
		CompanyID:      companyID,
		Current:        current,
		Total:          total,
		Percentage:     Percentage(current, total),
		CurrentContact: currentContact,
		Status:         status,
	}
}

// ForContactList scopes the event to a contact list
func (e Event) ForContactList(id uuid.UUID) Event {
	e.ContactListID = &id
	return e
}

// ForCampaign scopes the event to a campaign
func (e Event) ForCampaign(id uuid.UUID) Event {
	e.CampaignID = &id
	return e
}

// Percentage returns current/total as a whole percentage; an empty total is
// reported as done
func Percentage(current, total int) int {
	if total <= 0 {
		return 100
	}
	if current >= total {
		return 100
	}
	return current * 100 / total
}

// Notifier publishes progress. Notify never blocks on delivery and never
// fails the caller.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Nop discards every event
type Nop struct{}

func (Nop) Notify(context.Context, Event) {}
