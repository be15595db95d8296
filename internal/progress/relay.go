package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"campaign-server/internal/clients/kafka"
	"campaign-server/internal/observability"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// Relay feeds progress events read from the event stream to a local
// notifier, so WebSocket clients see events produced by any process
type Relay struct {
	target Notifier
	logger *observability.Logger
}

func NewRelay(target Notifier, logger *observability.Logger) *Relay {
	return &Relay{target: target, logger: logger}
}

// HandleMessage decodes one stream message and forwards it
func (r *Relay) HandleMessage(ctx context.Context, msg kafkago.Message) error {
	var em kafka.EventMessage
	if err := json.Unmarshal(msg.Value, &em); err != nil {
		return fmt.Errorf("failed to decode progress message: %w", err)
	}

	event, err := fromMessage(em)
	if err != nil {
		return err
	}
	r.target.Notify(ctx, event)
	return nil
}

func fromMessage(msg kafka.EventMessage) (Event, error) {
	companyID, err := uuid.Parse(msg.CompanyID)
	if err != nil {
		return Event{}, fmt.Errorf("invalid company id %q: %w", msg.CompanyID, err)
	}

	event := Event{
		Kind:           KindCampaign,
		CompanyID:      companyID,
		Current:        intValue(msg.Data["current"]),
		Total:          intValue(msg.Data["total"]),
		Percentage:     intValue(msg.Data["percentage"]),
		CurrentContact: stringValue(msg.Data["current_contact"]),
		Status:         stringValue(msg.Data["status"]),
	}

	switch msg.Type {
	case EventTypeCampaign:
	case EventTypeContactValidation:
		event.Kind = KindContactValidation
	default:
		return Event{}, fmt.Errorf("unknown progress event type %q", msg.Type)
	}

	if msg.ContactListID != nil {
		id, err := uuid.Parse(*msg.ContactListID)
		if err != nil {
			return Event{}, fmt.Errorf("invalid contact list id: %w", err)
		}
		event.ContactListID = &id
	}
	if msg.CampaignID != nil {
		id, err := uuid.Parse(*msg.CampaignID)
		if err != nil {
			return Event{}, fmt.Errorf("invalid campaign id: %w", err)
		}
		event.CampaignID = &id
	}
	return event, nil
}

// JSON numbers decode as float64
func intValue(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}
