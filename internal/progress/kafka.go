package progress

import (
	"context"
	"sync"
	"time"

	"campaign-server/internal/clients/kafka"
	"campaign-server/internal/observability"

	"github.com/google/uuid"
)

const (
	EventTypeContactValidation = "contact_validation.progress"
	EventTypeCampaign          = "campaign.progress"
)

// EventPublisher writes one message to the event stream
type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// KafkaNotifier queues events and publishes them from a single goroutine.
// When the queue is full the event is dropped.
type KafkaNotifier struct {
	publisher EventPublisher
	logger    *observability.Logger

	mu      sync.RWMutex
	closed  bool
	pending chan Event
	done    chan struct{}
}

// NewKafkaNotifier starts the publishing goroutine. Close stops it.
func NewKafkaNotifier(publisher EventPublisher, bufferSize int, logger *observability.Logger) *KafkaNotifier {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	n := &KafkaNotifier{
		publisher: publisher,
		logger:    logger,
		pending:   make(chan Event, bufferSize),
		done:      make(chan struct{}),
	}
	go n.run()
	return n
}

func (n *KafkaNotifier) Notify(ctx context.Context, event Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}

	select {
	case n.pending <- event:
	default:
		n.logger.Warn(ctx, "progress queue full, dropping event",
			observability.Field{Key: "company_id", Value: event.CompanyID.String()},
			observability.Field{Key: "status", Value: event.Status},
		)
	}
}

// Close flushes queued events and stops the publishing goroutine
func (n *KafkaNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.pending)
	n.mu.Unlock()
	<-n.done
}

func (n *KafkaNotifier) run() {
	defer close(n.done)
	for event := range n.pending {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := n.publisher.PublishEvent(ctx, toMessage(event)); err != nil {
			n.logger.Error(ctx, "failed to publish progress event", err)
		}
		cancel()
	}
}

func toMessage(event Event) kafka.EventMessage {
	msg := kafka.EventMessage{
		ID:        uuid.NewString(),
		Type:      EventTypeCampaign,
		CompanyID: event.CompanyID.String(),
		Data: map[string]interface{}{
			"current":         event.Current,
			"total":           event.Total,
			"percentage":      event.Percentage,
			"current_contact": event.CurrentContact,
			"status":          event.Status,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if event.Kind == KindContactValidation {
		msg.Type = EventTypeContactValidation
	}
	if event.ContactListID != nil {
		id := event.ContactListID.String()
		msg.ContactListID = &id
	}
	if event.CampaignID != nil {
		id := event.CampaignID.String()
		msg.CampaignID = &id
	}
	return msg
}
