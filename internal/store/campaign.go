package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const campaignColumns = `id, company_id, contact_list_id, whatsapp_id, name, status, scheduled_at, started_at, completed_at,
message1, message2, message3, message4, message5,
confirmation_message1, confirmation_message2, confirmation_message3, confirmation_message4, confirmation_message5,
confirmation, created_at, updated_at, deleted_at`

// CampaignMessages holds the five message slots and five confirmation slots
type CampaignMessages struct {
	Messages             [5]string
	ConfirmationMessages [5]string
	Confirmation         bool
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	CompanyID     uuid.UUID
	ContactListID uuid.UUID
	WhatsappID    uuid.UUID
	Name          string
	Status        string
	ScheduledAt   *time.Time
	CampaignMessages
	// Quota, when set, is enforced against the company's campaigns in the
	// same transaction as the insert
	Quota *CampaignQuota
}

// CampaignQuota caps the campaigns a company may create in [From, To)
type CampaignQuota struct {
	Limit int
	From  time.Time
	To    time.Time
}

const sqlCreateCampaign = `
INSERT INTO campaigns (company_id, contact_list_id, whatsapp_id, name, status, scheduled_at,
	message1, message2, message3, message4, message5,
	confirmation_message1, confirmation_message2, confirmation_message3, confirmation_message4, confirmation_message5,
	confirmation)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
RETURNING ` + campaignColumns

const sqlLockCompanyCampaigns = `
SELECT pg_advisory_xact_lock(hashtext('campaigns:' || $1::text))
`

// CreateCampaign inserts a campaign in one of the entry states. With a quota
// it holds a per-company lock while counting and inserting, and returns
// ErrQuotaExceeded when the quota is already used up.
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	switch params.Status {
	case CampaignStatusScheduled:
		if params.ScheduledAt == nil {
			return Campaign{}, ErrScheduleRequired
		}
	case CampaignStatusPending:
	default:
		return Campaign{}, fmt.Errorf("cannot create campaign as %q: %w", params.Status, ErrInvalidTransition)
	}

	if params.Quota == nil {
		return insertCampaign(ctx, s.db, params)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sqlLockCompanyCampaigns, params.CompanyID); err != nil {
		return Campaign{}, fmt.Errorf("failed to lock company campaigns: %w", err)
	}
	var count int
	err = tx.GetContext(ctx, &count, sqlCountCampaignsCreatedBetween, params.CompanyID, params.Quota.From, params.Quota.To, nil)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to count campaigns: %w", err)
	}
	if count >= params.Quota.Limit {
		return Campaign{}, ErrQuotaExceeded
	}

	campaign, err := insertCampaign(ctx, tx, params)
	if err != nil {
		return Campaign{}, err
	}
	if err := tx.Commit(); err != nil {
		return Campaign{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return campaign, nil
}

func insertCampaign(ctx context.Context, q sqlx.QueryerContext, params CreateCampaignParams) (Campaign, error) {
	m := params.Messages
	cm := params.ConfirmationMessages
	var campaign Campaign
	err := sqlx.GetContext(ctx, q, &campaign, sqlCreateCampaign,
		params.CompanyID,
		params.ContactListID,
		params.WhatsappID,
		params.Name,
		params.Status,
		params.ScheduledAt,
		m[0], m[1], m[2], m[3], m[4],
		cm[0], cm[1], cm[2], cm[3], cm[4],
		params.Confirmation)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1 AND deleted_at IS NULL
`

// GetCampaignByID retrieves a campaign by ID regardless of company
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignForCompany = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
`

// GetCampaignForCompany retrieves a campaign scoped to its company
func (s *Store) GetCampaignForCompany(ctx context.Context, companyID, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignForCompany, campaignID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE company_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListCampaigns lists a company's campaigns, newest first
func (s *Store) ListCampaigns(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// UpdateCampaignParams represents parameters for editing a scheduled campaign
type UpdateCampaignParams struct {
	Name          string
	ContactListID uuid.UUID
	WhatsappID    uuid.UUID
	ScheduledAt   time.Time
	CampaignMessages
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = $3,
    contact_list_id = $4,
    whatsapp_id = $5,
    scheduled_at = $6,
    message1 = $7, message2 = $8, message3 = $9, message4 = $10, message5 = $11,
    confirmation_message1 = $12, confirmation_message2 = $13, confirmation_message3 = $14,
    confirmation_message4 = $15, confirmation_message5 = $16,
    confirmation = $17,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND company_id = $2 AND status = 'scheduled' AND deleted_at IS NULL
RETURNING ` + campaignColumns

// UpdateCampaign edits a campaign that has not been claimed yet.
// Returns ErrNotFound when the campaign is missing or no longer scheduled.
func (s *Store) UpdateCampaign(ctx context.Context, companyID, campaignID uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	m := params.Messages
	cm := params.ConfirmationMessages
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaign,
		campaignID,
		companyID,
		params.Name,
		params.ContactListID,
		params.WhatsappID,
		params.ScheduledAt,
		m[0], m[1], m[2], m[3], m[4],
		cm[0], cm[1], cm[2], cm[3], cm[4],
		params.Confirmation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignStatus = `
SELECT status FROM campaigns WHERE id = $1
`

// GetCampaignStatus reads only the status column
func (s *Store) GetCampaignStatus(ctx context.Context, campaignID uuid.UUID) (string, error) {
	var status string
	err := s.db.GetContext(ctx, &status, sqlGetCampaignStatus, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get campaign status: %w", err)
	}
	return status, nil
}

const sqlCountCampaignsCreatedBetween = `
SELECT COUNT(*)
FROM campaigns
WHERE company_id = $1
  AND created_at >= $2
  AND created_at < $3
  AND ($4::uuid IS NULL OR id <> $4::uuid)
  AND deleted_at IS NULL
`

// CountCampaignsCreatedBetween counts a company's campaigns created in [from, to),
// leaving out excludeID when given
func (s *Store) CountCampaignsCreatedBetween(ctx context.Context, companyID uuid.UUID, from, to time.Time, excludeID *uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCampaignsCreatedBetween, companyID, from, to, excludeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return count, nil
}

const sqlGetDueCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = 'scheduled'
  AND scheduled_at <= $1
  AND deleted_at IS NULL
ORDER BY scheduled_at ASC
`

// GetDueCampaigns retrieves scheduled campaigns whose time has come
func (s *Store) GetDueCampaigns(ctx context.Context, now time.Time) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetDueCampaigns, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlGetStaleRunningCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = 'running'
  AND updated_at < $1
  AND deleted_at IS NULL
ORDER BY updated_at ASC
`

// GetStaleRunningCampaigns retrieves running campaigns without a recent heartbeat
func (s *Store) GetStaleRunningCampaigns(ctx context.Context, before time.Time) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetStaleRunningCampaigns, before)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale campaigns: %w", err)
	}
	return campaigns, nil
}
