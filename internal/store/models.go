package store

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is one WhatsApp broadcast job
type Campaign struct {
	ID            uuid.UUID `db:"id" json:"id"`
	CompanyID     uuid.UUID `db:"company_id" json:"company_id"`
	ContactListID uuid.UUID `db:"contact_list_id" json:"contact_list_id"`
	WhatsappID    uuid.UUID `db:"whatsapp_id" json:"whatsapp_id"`

	Name   string `db:"name" json:"name"`
	Status string `db:"status" json:"status"`

	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`
	StartedAt   *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`

	Message1 string `db:"message1" json:"message1"`
	Message2 string `db:"message2" json:"message2"`
	Message3 string `db:"message3" json:"message3"`
	Message4 string `db:"message4" json:"message4"`
	Message5 string `db:"message5" json:"message5"`

	ConfirmationMessage1 string `db:"confirmation_message1" json:"confirmation_message1"`
	ConfirmationMessage2 string `db:"confirmation_message2" json:"confirmation_message2"`
	ConfirmationMessage3 string `db:"confirmation_message3" json:"confirmation_message3"`
	ConfirmationMessage4 string `db:"confirmation_message4" json:"confirmation_message4"`
	ConfirmationMessage5 string `db:"confirmation_message5" json:"confirmation_message5"`

	Confirmation bool `db:"confirmation" json:"confirmation"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// Messages returns the non-empty message variants in slot order
func (c Campaign) Messages() []string {
	return nonEmpty(c.Message1, c.Message2, c.Message3, c.Message4, c.Message5)
}

// ConfirmationMessages returns the non-empty confirmation variants in slot order
func (c Campaign) ConfirmationMessages() []string {
	return nonEmpty(c.ConfirmationMessage1, c.ConfirmationMessage2, c.ConfirmationMessage3, c.ConfirmationMessage4, c.ConfirmationMessage5)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ContactList groups imported contacts for a company
type ContactList struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CompanyID uuid.UUID `db:"company_id" json:"company_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ContactListItem is one row of a contact list.
// IsWhatsappValid is nil until the row has been through validation.
type ContactListItem struct {
	ID              uuid.UUID `db:"id" json:"id"`
	ContactListID   uuid.UUID `db:"contact_list_id" json:"contact_list_id"`
	CompanyID       uuid.UUID `db:"company_id" json:"company_id"`
	Name            string    `db:"name" json:"name"`
	Number          string    `db:"number" json:"number"`
	Email           string    `db:"email" json:"email"`
	IsWhatsappValid *bool     `db:"is_whatsapp_valid" json:"is_whatsapp_valid"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// CampaignDelivery records the outcome of one send so a restarted
// dispatcher skips contacts that were already attempted
type CampaignDelivery struct {
	ID                uuid.UUID `db:"id" json:"id"`
	CampaignID        uuid.UUID `db:"campaign_id" json:"campaign_id"`
	ContactListItemID uuid.UUID `db:"contact_list_item_id" json:"contact_list_item_id"`
	Number            string    `db:"number" json:"number"`
	Message           string    `db:"message" json:"message"`
	Status            string    `db:"status" json:"status"`
	ErrorMessage      *string   `db:"error_message" json:"error_message,omitempty"`
	DeliveredAt       time.Time `db:"delivered_at" json:"delivered_at"`
}

// CampaignDeliveryStats aggregates deliveries for a campaign
type CampaignDeliveryStats struct {
	Sent   int `db:"sent" json:"sent"`
	Failed int `db:"failed" json:"failed"`
}

// PlanLimits is the campaign-relevant slice of a company's plan
type PlanLimits struct {
	UseCampaigns           bool `db:"use_campaigns" json:"use_campaigns"`
	CampaignContactsLimit  int  `db:"campaign_contacts_limit" json:"campaign_contacts_limit"`
	CampaignsPerMonthLimit int  `db:"campaigns_per_month_limit" json:"campaigns_per_month_limit"`
}

// CompanySetting is a single key/value company setting
type CompanySetting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// WhatsappConnection is a sending connection owned by a company
type WhatsappConnection struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CompanyID   uuid.UUID `db:"company_id" json:"company_id"`
	Name        string    `db:"name" json:"name"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	IsDefault   bool      `db:"is_default" json:"is_default"`
	Status      string    `db:"status" json:"status"`
}
