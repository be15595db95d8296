package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campaign-server/internal/admission"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"

	"github.com/google/uuid"
)

// MaxMessageVariants is the number of message and confirmation slots
const MaxMessageVariants = 5

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignForCompany(ctx context.Context, companyID, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]store.Campaign, error)
	UpdateCampaign(ctx context.Context, companyID, campaignID uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	TransitionCampaignStatus(ctx context.Context, campaignID uuid.UUID, from, to string) (bool, error)
	CancelCampaign(ctx context.Context, campaignID uuid.UUID) (bool, error)
	GetContactList(ctx context.Context, companyID, contactListID uuid.UUID) (store.ContactList, error)
	GetWhatsappConnection(ctx context.Context, companyID, connectionID uuid.UUID) (store.WhatsappConnection, error)
	CountValidContacts(ctx context.Context, companyID, contactListID uuid.UUID) (int, error)
	GetCampaignDeliveryStats(ctx context.Context, campaignID uuid.UUID) (store.CampaignDeliveryStats, error)
}

// LimitValidator is the admission gate
type LimitValidator interface {
	ValidateLimits(ctx context.Context, req admission.Request) (admission.Result, error)
}

// Launcher hands a running campaign to a dispatcher
type Launcher interface {
	Launch(ctx context.Context, campaignID uuid.UUID) error
}

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrContactListNotFound = errors.New("contact list not found")
	ErrConnectionNotFound  = errors.New("whatsapp connection not found")
	ErrInvalidMessages     = errors.New("campaign needs between 1 and 5 messages")
	ErrScheduleInPast      = errors.New("scheduled_at must be in the future")
	ErrCampaignNotEditable = errors.New("only scheduled campaigns can be edited")
	ErrCampaignClosed      = errors.New("campaign already finished or cancelled")
	ErrLaunchFailed        = errors.New("failed to start campaign")
)

type CampaignProcessor struct {
	store    CampaignStore
	limits   LimitValidator
	launcher Launcher
	logger   *observability.Logger
	now      func() time.Time
}

func New(store CampaignStore, limits LimitValidator, launcher Launcher, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:    store,
		limits:   limits,
		launcher: launcher,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateCampaignParams represents parameters for creating a campaign.
// A nil ScheduledAt sends the campaign immediately.
type CreateCampaignParams struct {
	Name                 string
	ContactListID        uuid.UUID
	WhatsappID           uuid.UUID
	ScheduledAt          *time.Time
	Messages             []string
	ConfirmationMessages []string
	Confirmation         bool
}

// UpdateCampaignParams represents parameters for editing a scheduled campaign
type UpdateCampaignParams struct {
	Name                 string
	ContactListID        uuid.UUID
	WhatsappID           uuid.UUID
	ScheduledAt          time.Time
	Messages             []string
	ConfirmationMessages []string
	Confirmation         bool
}

// CampaignReport summarises the deliveries of a campaign
type CampaignReport struct {
	Campaign store.Campaign `json:"campaign"`
	Total    int            `json:"total"`
	Sent     int            `json:"sent"`
	Failed   int            `json:"failed"`
	Pending  int            `json:"pending"`
}

// CreateCampaign admits and stores a campaign. Scheduled campaigns wait for
// the scheduler; the rest are claimed and launched right away.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, companyID uuid.UUID, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "create_campaign"},
		observability.Field{Key: "company_id", Value: companyID.String()},
		observability.Field{Key: "contact_list_id", Value: params.ContactListID.String()},
	)

	messages, err := buildMessages(params.Messages, params.ConfirmationMessages, params.Confirmation)
	if err != nil {
		return store.Campaign{}, err
	}
	if params.ScheduledAt != nil && !params.ScheduledAt.After(p.now()) {
		return store.Campaign{}, ErrScheduleInPast
	}
	if err := p.checkOwnership(ctx, companyID, params.ContactListID, params.WhatsappID); err != nil {
		return store.Campaign{}, err
	}

	admitted, err := p.limits.ValidateLimits(ctx, admission.Request{
		CompanyID:     companyID,
		ContactListID: &params.ContactListID,
		Purpose:       admission.PurposeCampaign,
	})
	if err != nil {
		return store.Campaign{}, err
	}
	from, to := admission.MonthWindow(p.now())

	status := store.CampaignStatusPending
	if params.ScheduledAt != nil {
		status = store.CampaignStatusScheduled
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		CompanyID:        companyID,
		ContactListID:    params.ContactListID,
		WhatsappID:       params.WhatsappID,
		Name:             params.Name,
		Status:           status,
		ScheduledAt:      params.ScheduledAt,
		CampaignMessages: messages,
		// the count above is advisory; the store recounts under a lock
		Quota: &store.CampaignQuota{Limit: admitted.MaxCampaignsPerMonth, From: from, To: to},
	})
	if errors.Is(err, store.ErrQuotaExceeded) {
		p.logger.Info(ctx, "monthly campaign limit reached by a concurrent create")
		return store.Campaign{}, admission.ErrMonthlyLimitExceeded
	}
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID.String()})
	p.logger.Info(ctx, "campaign created", observability.Field{Key: "status", Value: campaign.Status})

	if status == store.CampaignStatusScheduled {
		return campaign, nil
	}
	return p.start(ctx, campaign)
}

// start claims a pending campaign and launches it
func (p *CampaignProcessor) start(ctx context.Context, campaign store.Campaign) (store.Campaign, error) {
	claimed, err := p.store.TransitionCampaignStatus(ctx, campaign.ID, store.CampaignStatusPending, store.CampaignStatusRunning)
	if err != nil {
		p.logger.Error(ctx, "failed to claim pending campaign", err)
		p.cancel(ctx, campaign.ID)
		return store.Campaign{}, fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	if !claimed {
		// cancelled between insert and claim
		return campaign, nil
	}
	campaign.Status = store.CampaignStatusRunning

	if err := p.launcher.Launch(ctx, campaign.ID); err != nil {
		p.logger.Error(ctx, "failed to launch campaign", err)
		p.cancel(ctx, campaign.ID)
		return store.Campaign{}, fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	return campaign, nil
}

func (p *CampaignProcessor) cancel(ctx context.Context, campaignID uuid.UUID) {
	if _, err := p.store.CancelCampaign(ctx, campaignID); err != nil {
		p.logger.Error(ctx, "failed to cancel campaign after launch failure", err)
	}
}

// UpdateCampaign edits a campaign that is still waiting for its schedule.
// The campaign itself is left out of the monthly count.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, companyID, campaignID uuid.UUID, params UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "update_campaign"},
		observability.Field{Key: "company_id", Value: companyID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	current, err := p.getCampaign(ctx, companyID, campaignID)
	if err != nil {
		return store.Campaign{}, err
	}
	if current.Status != store.CampaignStatusScheduled {
		return store.Campaign{}, ErrCampaignNotEditable
	}

	messages, err := buildMessages(params.Messages, params.ConfirmationMessages, params.Confirmation)
	if err != nil {
		return store.Campaign{}, err
	}
	if !params.ScheduledAt.After(p.now()) {
		return store.Campaign{}, ErrScheduleInPast
	}
	if err := p.checkOwnership(ctx, companyID, params.ContactListID, params.WhatsappID); err != nil {
		return store.Campaign{}, err
	}

	if _, err := p.limits.ValidateLimits(ctx, admission.Request{
		CompanyID:     companyID,
		ContactListID: &params.ContactListID,
		CampaignID:    &campaignID,
		Purpose:       admission.PurposeCampaign,
	}); err != nil {
		return store.Campaign{}, err
	}

	campaign, err := p.store.UpdateCampaign(ctx, companyID, campaignID, store.UpdateCampaignParams{
		Name:             params.Name,
		ContactListID:    params.ContactListID,
		WhatsappID:       params.WhatsappID,
		ScheduledAt:      params.ScheduledAt,
		CampaignMessages: messages,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// claimed by the scheduler since the read above
			return store.Campaign{}, ErrCampaignNotEditable
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// CancelCampaign cancels a scheduled, pending or running campaign. A running
// dispatcher stops before its next send.
func (p *CampaignProcessor) CancelCampaign(ctx context.Context, companyID, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "cancel_campaign"},
		observability.Field{Key: "company_id", Value: companyID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.getCampaign(ctx, companyID, campaignID)
	if err != nil {
		return store.Campaign{}, err
	}
	if store.IsTerminalStatus(campaign.Status) {
		return store.Campaign{}, ErrCampaignClosed
	}

	cancelled, err := p.store.CancelCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to cancel campaign", err)
		return store.Campaign{}, err
	}
	if !cancelled {
		return store.Campaign{}, ErrCampaignClosed
	}

	p.logger.Info(ctx, "campaign cancelled", observability.Field{Key: "previous_status", Value: campaign.Status})
	campaign.Status = store.CampaignStatusCancelled
	return campaign, nil
}

// GetCampaign retrieves a campaign of the company
func (p *CampaignProcessor) GetCampaign(ctx context.Context, companyID, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_campaign"},
		observability.Field{Key: "company_id", Value: companyID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)
	return p.getCampaign(ctx, companyID, campaignID)
}

// ListCampaigns lists the company's campaigns, newest first
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, companyID uuid.UUID, page, limit int) ([]store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "list_campaigns"},
		observability.Field{Key: "company_id", Value: companyID.String()},
	)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	campaigns, err := p.store.ListCampaigns(ctx, companyID, limit, (page-1)*limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	if campaigns == nil {
		campaigns = []store.Campaign{}
	}
	return campaigns, nil
}

// GetCampaignReport counts sent, failed and pending deliveries. Pending is
// measured against the list's current valid contacts.
func (p *CampaignProcessor) GetCampaignReport(ctx context.Context, companyID, campaignID uuid.UUID) (CampaignReport, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_campaign_report"},
		observability.Field{Key: "company_id", Value: companyID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.getCampaign(ctx, companyID, campaignID)
	if err != nil {
		return CampaignReport{}, err
	}

	stats, err := p.store.GetCampaignDeliveryStats(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get delivery stats", err)
		return CampaignReport{}, err
	}
	valid, err := p.store.CountValidContacts(ctx, companyID, campaign.ContactListID)
	if err != nil {
		p.logger.Error(ctx, "failed to count valid contacts", err)
		return CampaignReport{}, err
	}

	report := CampaignReport{
		Campaign: campaign,
		Sent:     stats.Sent,
		Failed:   stats.Failed,
		Total:    max(valid, stats.Sent+stats.Failed),
	}
	if !store.IsTerminalStatus(campaign.Status) {
		report.Pending = report.Total - stats.Sent - stats.Failed
	}
	return report, nil
}

// GetLimits runs the admission check without side effects. Limit rejections
// come back as a result with IsValid false; only a disabled feature or a
// failure is an error.
func (p *CampaignProcessor) GetLimits(ctx context.Context, companyID uuid.UUID, contactListID, campaignID *uuid.UUID) (admission.Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_limits"},
		observability.Field{Key: "company_id", Value: companyID.String()},
	)

	result, err := p.limits.ValidateLimits(ctx, admission.Request{
		CompanyID:     companyID,
		ContactListID: contactListID,
		CampaignID:    campaignID,
		Purpose:       admission.PurposeCampaign,
	})
	if err != nil && !errors.Is(err, admission.ErrContactLimitExceeded) && !errors.Is(err, admission.ErrMonthlyLimitExceeded) {
		return admission.Result{}, err
	}
	return result, nil
}

func (p *CampaignProcessor) getCampaign(ctx context.Context, companyID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignForCompany(ctx, companyID, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

func (p *CampaignProcessor) checkOwnership(ctx context.Context, companyID, contactListID, connectionID uuid.UUID) error {
	if _, err := p.store.GetContactList(ctx, companyID, contactListID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContactListNotFound
		}
		p.logger.Error(ctx, "failed to get contact list", err)
		return err
	}
	if _, err := p.store.GetWhatsappConnection(ctx, companyID, connectionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrConnectionNotFound
		}
		p.logger.Error(ctx, "failed to get whatsapp connection", err)
		return err
	}
	return nil
}

// buildMessages trims the variants and packs them into the five slots.
// Blank variants are dropped; at least one message is required.
func buildMessages(messages, confirmations []string, confirmation bool) (store.CampaignMessages, error) {
	var out store.CampaignMessages

	packed := compact(messages)
	if len(packed) == 0 || len(packed) > MaxMessageVariants {
		return out, ErrInvalidMessages
	}
	copy(out.Messages[:], packed)

	packedConfirmations := compact(confirmations)
	if len(packedConfirmations) > MaxMessageVariants || (confirmation && len(packedConfirmations) == 0) {
		return out, ErrInvalidMessages
	}
	copy(out.ConfirmationMessages[:], packedConfirmations)
	out.Confirmation = confirmation

	return out, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
