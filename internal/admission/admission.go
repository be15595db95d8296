package admission

//go:generate go run go.uber.org/mock/mockgen@latest -source=admission.go -destination=mocks_test.go -package=admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campaign-server/internal/observability"
	"campaign-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrFeatureDisabled      = errors.New("campaigns are not enabled for this plan")
	ErrContactLimitExceeded = errors.New("contact list exceeds the plan contact limit")
	ErrMonthlyLimitExceeded = errors.New("monthly campaign limit reached")
)

// Store defines the counts the controller reads
type Store interface {
	CountCampaignsCreatedBetween(ctx context.Context, companyID uuid.UUID, from, to time.Time, excludeID *uuid.UUID) (int, error)
	CountValidContacts(ctx context.Context, companyID, contactListID uuid.UUID) (int, error)
}

// PlanProvider supplies the company's plan limits
type PlanProvider interface {
	GetPlanLimits(ctx context.Context, companyID uuid.UUID) (store.PlanLimits, error)
}

// Purpose tells the controller which entry point is asking
type Purpose int

const (
	// PurposeCampaign covers campaign creation and editing
	PurposeCampaign Purpose = iota
	// PurposeImport covers contact imports, which do not consume the monthly quota
	PurposeImport
)

// Reason identifies why a request was rejected
type Reason string

const (
	ReasonFeatureDisabled      Reason = "feature_disabled"
	ReasonContactLimitExceeded Reason = "contact_limit_exceeded"
	ReasonMonthlyLimitExceeded Reason = "monthly_limit_exceeded"
)

// Request describes what is being admitted. CampaignID is set when editing.
type Request struct {
	CompanyID     uuid.UUID
	ContactListID *uuid.UUID
	CampaignID    *uuid.UUID
	Purpose       Purpose
}

// Result is the outcome of an admission check. It is filled in as far as the
// check got, even when the request is rejected.
type Result struct {
	IsValid               bool   `json:"is_valid"`
	MaxContacts           int    `json:"max_contacts"`
	CurrentMonthCampaigns int    `json:"current_month_campaigns"`
	MaxCampaignsPerMonth  int    `json:"max_campaigns_per_month"`
	ContactsInList        *int   `json:"contacts_in_list,omitempty"`
	Reason                Reason `json:"reason,omitempty"`
}

// Err returns the sentinel error matching the rejection reason, or nil
func (r Result) Err() error {
	switch r.Reason {
	case ReasonFeatureDisabled:
		return ErrFeatureDisabled
	case ReasonContactLimitExceeded:
		return ErrContactLimitExceeded
	case ReasonMonthlyLimitExceeded:
		return ErrMonthlyLimitExceeded
	}
	return nil
}

// Controller gates campaign creation and contact imports against plan limits
type Controller struct {
	plans  PlanProvider
	store  Store
	logger *observability.Logger
	now    func() time.Time
}

// New creates a new Controller
func New(plans PlanProvider, store Store, logger *observability.Logger) *Controller {
	return &Controller{
		plans:  plans,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// MonthWindow returns the calendar month containing t as [start, end) in UTC.
// end is the first instant of the next month, so the last day is fully included.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// ValidateLimits checks a request against the company's plan. It has no side
// effects. On rejection it returns the populated Result together with the
// matching sentinel error.
func (c *Controller) ValidateLimits(ctx context.Context, req Request) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "validate_limits"},
		observability.Field{Key: "company_id", Value: req.CompanyID.String()},
	)

	limits, err := c.plans.GetPlanLimits(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.reject(ctx, Result{}, ReasonFeatureDisabled)
		}
		return Result{}, fmt.Errorf("failed to get plan limits: %w", err)
	}

	result := Result{
		MaxContacts:          limits.CampaignContactsLimit,
		MaxCampaignsPerMonth: limits.CampaignsPerMonthLimit,
	}
	if !limits.UseCampaigns {
		return c.reject(ctx, result, ReasonFeatureDisabled)
	}

	from, to := MonthWindow(c.now())
	result.CurrentMonthCampaigns, err = c.store.CountCampaignsCreatedBetween(ctx, req.CompanyID, from, to, req.CampaignID)
	if err != nil {
		c.logger.Error(ctx, "failed to count campaigns for the month", err)
		return Result{}, fmt.Errorf("failed to count campaigns: %w", err)
	}

	if req.ContactListID != nil {
		contacts, err := c.store.CountValidContacts(ctx, req.CompanyID, *req.ContactListID)
		if err != nil {
			c.logger.Error(ctx, "failed to count valid contacts", err)
			return Result{}, fmt.Errorf("failed to count contacts: %w", err)
		}
		result.ContactsInList = &contacts
		if contacts > result.MaxContacts {
			return c.reject(ctx, result, ReasonContactLimitExceeded)
		}
	}

	creating := req.Purpose == PurposeCampaign && req.CampaignID == nil
	if creating && result.CurrentMonthCampaigns >= result.MaxCampaignsPerMonth {
		return c.reject(ctx, result, ReasonMonthlyLimitExceeded)
	}

	result.IsValid = true
	return result, nil
}

func (c *Controller) reject(ctx context.Context, result Result, reason Reason) (Result, error) {
	result.IsValid = false
	result.Reason = reason
	c.logger.Info(ctx, "admission rejected", observability.Field{Key: "reason", Value: string(reason)})
	return result, result.Err()
}
