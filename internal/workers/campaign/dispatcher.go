package campaign

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatcher.go -destination=mocks_test.go -package=campaign

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campaign-server/internal/metrics"
	"campaign-server/internal/observability"
	"campaign-server/internal/plans"
	"campaign-server/internal/progress"
	"campaign-server/internal/store"
	"campaign-server/internal/whatsapp"

	"github.com/google/uuid"
)

// DispatchStore defines the database operations required by Dispatcher
type DispatchStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetCampaignStatus(ctx context.Context, campaignID uuid.UUID) (string, error)
	GetUndeliveredContacts(ctx context.Context, campaignID, contactListID uuid.UUID) ([]store.ContactListItem, error)
	GetCampaignDeliveryStats(ctx context.Context, campaignID uuid.UUID) (store.CampaignDeliveryStats, error)
	RecordDelivery(ctx context.Context, params store.RecordDeliveryParams) error
	TouchCampaign(ctx context.Context, campaignID uuid.UUID) error
	TransitionCampaignStatus(ctx context.Context, campaignID uuid.UUID, from, to string) (bool, error)
}

// SettingsProvider reads the company's pacing settings
type SettingsProvider interface {
	GetCampaignSettings(ctx context.Context, companyID uuid.UUID) (plans.CampaignSettings, error)
}

// SessionProvider resolves the connection a campaign sends through
type SessionProvider interface {
	Session(companyID, connectionID uuid.UUID) (whatsapp.Session, error)
}

// SendLimiter blocks until the company may send one more message
type SendLimiter interface {
	Wait(ctx context.Context, companyID uuid.UUID, settings plans.CampaignSettings) error
}

// DefaultHeartbeatInterval is how often a live dispatch refreshes the
// campaign heartbeat, sends or not. It must stay well below the scheduler's
// stale threshold.
const DefaultHeartbeatInterval = 5 * time.Minute

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNoSession        = errors.New("whatsapp connection unavailable")
	ErrNoMessages       = errors.New("campaign has no messages")
)

// Dispatcher delivers one campaign's messages, one at a time, within the
// company's rate window
type Dispatcher struct {
	store    DispatchStore
	settings SettingsProvider
	sessions SessionProvider
	limiter  SendLimiter
	notifier progress.Notifier
	logger   *observability.Logger

	heartbeat time.Duration
}

func NewDispatcher(store DispatchStore, settings SettingsProvider, sessions SessionProvider, limiter SendLimiter, notifier progress.Notifier, logger *observability.Logger) *Dispatcher {
	if notifier == nil {
		notifier = progress.Nop{}
	}
	return &Dispatcher{
		store:     store,
		settings:  settings,
		sessions:  sessions,
		limiter:   limiter,
		notifier:  notifier,
		logger:    logger,
		heartbeat: DefaultHeartbeatInterval,
	}
}

// RunCampaign sends the campaign to every valid contact that has no delivery
// yet and finishes it. It does nothing unless the campaign is running.
//
// A cancelled campaign stops before its next send and keeps its status.
// Context cancellation stops the loop and leaves the campaign running so the
// scheduler can recover it. Errors are returned only for failures that make
// the campaign impossible to run; the caller cancels it.
func (d *Dispatcher) RunCampaign(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "run_campaign"},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := d.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		d.logger.Error(ctx, "failed to get campaign", err)
		return err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "company_id", Value: campaign.CompanyID.String()},
		observability.Field{Key: "contact_list_id", Value: campaign.ContactListID.String()},
	)

	if campaign.Status != store.CampaignStatusRunning {
		d.logger.Info(ctx, "campaign is not running, skipping", observability.Field{Key: "status", Value: campaign.Status})
		return nil
	}

	variants := campaign.Messages()
	if campaign.Confirmation {
		variants = campaign.ConfirmationMessages()
	}
	if len(variants) == 0 {
		return ErrNoMessages
	}

	settings, err := d.settings.GetCampaignSettings(ctx, campaign.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to get campaign settings: %w", err)
	}

	session, err := d.sessions.Session(campaign.CompanyID, campaign.WhatsappID)
	if err != nil {
		d.logger.Error(ctx, "no session for campaign connection", err)
		return fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	contacts, err := d.store.GetUndeliveredContacts(ctx, campaign.ID, campaign.ContactListID)
	if err != nil {
		return err
	}

	// a resumed run continues the rotation and the progress count
	delivered, err := d.store.GetCampaignDeliveryStats(ctx, campaign.ID)
	if err != nil {
		return err
	}
	offset := delivered.Sent + delivered.Failed
	total := offset + len(contacts)

	// a rate window wait can outlast the stale threshold
	stopHeartbeat := d.startHeartbeat(ctx, campaign.ID)
	defer stopHeartbeat()

	d.logger.Info(ctx, "dispatching campaign",
		observability.Field{Key: "contacts", Value: len(contacts)},
		observability.Field{Key: "already_delivered", Value: offset},
		observability.Field{Key: "max_messages_per_hour", Value: settings.MaxMessagesPerHour},
	)

	for i, contact := range contacts {
		if err := ctx.Err(); err != nil {
			d.logger.Warn(ctx, "campaign dispatch interrupted, leaving it running for recovery")
			return err
		}

		if err := d.limiter.Wait(ctx, campaign.CompanyID, settings); err != nil {
			d.logger.Warn(ctx, "campaign dispatch interrupted while waiting for the rate window")
			return err
		}

		status, err := d.store.GetCampaignStatus(ctx, campaign.ID)
		if err != nil {
			d.logger.Error(ctx, "failed to read campaign status", err)
			return err
		}
		if status != store.CampaignStatusRunning {
			d.logger.Info(ctx, "campaign stopped before send", observability.Field{Key: "status", Value: status})
			d.notify(ctx, campaign, offset+i, total, "", progress.StatusCancelled)
			return nil
		}

		position := offset + i
		message := RenderMessage(variants[position%len(variants)], contact)
		if err := d.send(ctx, session, campaign, contact, message); err != nil {
			return err
		}

		if err := d.store.TouchCampaign(ctx, campaign.ID); err != nil {
			d.logger.Error(ctx, "failed to refresh campaign heartbeat", err)
		}
		d.notify(ctx, campaign, position+1, total, contact.Number, progress.StatusRunning)
	}

	finished, err := d.store.TransitionCampaignStatus(ctx, campaign.ID, store.CampaignStatusRunning, store.CampaignStatusFinished)
	if err != nil {
		d.logger.Error(ctx, "failed to finish campaign", err)
		return err
	}
	if !finished {
		d.logger.Info(ctx, "campaign changed status before finishing")
		d.notify(ctx, campaign, total, total, "", progress.StatusCancelled)
		return nil
	}

	d.logger.Info(ctx, "campaign finished", observability.Field{Key: "total", Value: total})
	d.notify(ctx, campaign, total, total, "", progress.StatusCompleted)
	return nil
}

// startHeartbeat touches the campaign on every interval until the returned
// stop func is called. No touch happens after stop returns.
func (d *Dispatcher) startHeartbeat(ctx context.Context, campaignID uuid.UUID) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(d.heartbeat)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := d.store.TouchCampaign(ctx, campaignID); err != nil && ctx.Err() == nil {
					d.logger.Error(ctx, "failed to refresh campaign heartbeat", err)
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// send delivers one message and records the outcome. A transport failure is
// recorded as a failed delivery and does not stop the campaign.
func (d *Dispatcher) send(ctx context.Context, session whatsapp.Session, campaign store.Campaign, contact store.ContactListItem, message string) error {
	params := store.RecordDeliveryParams{
		CampaignID:        campaign.ID,
		ContactListItemID: contact.ID,
		Number:            contact.Number,
		Message:           message,
		Status:            store.DeliveryStatusSent,
	}

	if _, err := session.SendMessage(ctx, contact.Number, message); err != nil {
		d.logger.Warn(ctx, "failed to send campaign message",
			observability.Field{Key: "number", Value: contact.Number},
			observability.Field{Key: "error", Value: err.Error()},
		)
		errMsg := err.Error()
		params.Status = store.DeliveryStatusFailed
		params.ErrorMessage = &errMsg
		metrics.CampaignMessagesTotal.WithLabelValues(metrics.StatusFailed).Inc()
	} else {
		metrics.CampaignMessagesTotal.WithLabelValues(metrics.StatusSent).Inc()
	}

	if err := d.store.RecordDelivery(ctx, params); err != nil {
		d.logger.Error(ctx, "failed to record delivery", err)
		return err
	}
	return nil
}

func (d *Dispatcher) notify(ctx context.Context, campaign store.Campaign, current, total int, contact, status string) {
	d.notifier.Notify(ctx, progress.NewEvent(progress.KindCampaign, campaign.CompanyID, current, total, contact, status).
		ForCampaign(campaign.ID))
}

// RenderMessage substitutes the contact placeholders in a message variant
func RenderMessage(template string, contact store.ContactListItem) string {
	return strings.NewReplacer(
		"{name}", contact.Name,
		"{nome}", contact.Name,
		"{email}", contact.Email,
		"{number}", contact.Number,
		"{numero}", contact.Number,
	).Replace(template)
}
