package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// campaignTransitions lists every legal status edge. pending is the staging
// state for campaigns sent immediately; nothing leads back to scheduled.
var campaignTransitions = map[string][]string{
	CampaignStatusScheduled: {CampaignStatusRunning, CampaignStatusCancelled},
	CampaignStatusPending:   {CampaignStatusRunning, CampaignStatusCancelled},
	CampaignStatusRunning:   {CampaignStatusFinished, CampaignStatusCancelled},
}

// CanTransition reports whether a campaign may move from one status to another
func CanTransition(from, to string) bool {
	for _, next := range campaignTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further transition is possible
func IsTerminalStatus(status string) bool {
	return status == CampaignStatusFinished || status == CampaignStatusCancelled
}

const sqlTransitionCampaignStatus = `
UPDATE campaigns
SET status = $3::text,
    started_at = CASE WHEN $3::text = 'running' THEN COALESCE(started_at, $4) ELSE started_at END,
    completed_at = CASE WHEN $3::text IN ('finished', 'cancelled') THEN $4 ELSE completed_at END,
    updated_at = $4
WHERE id = $1 AND status = $2
`

// TransitionCampaignStatus moves a campaign from one status to another with a
// conditional update. It returns false when the campaign was not in the
// expected status, which means another actor got there first.
func (s *Store) TransitionCampaignStatus(ctx context.Context, campaignID uuid.UUID, from, to string) (bool, error) {
	if !CanTransition(from, to) {
		return false, fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
	}

	res, err := s.db.ExecContext(ctx, sqlTransitionCampaignStatus, campaignID, from, to, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to transition campaign status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

const sqlClaimCampaign = `
UPDATE campaigns
SET status = 'running',
    started_at = COALESCE(started_at, $2),
    updated_at = $2
WHERE id = $1 AND status = 'scheduled' AND scheduled_at <= $2
`

// ClaimCampaign atomically moves a campaign from scheduled to running if it
// is still due at now. Only one caller can win the claim for a given
// campaign, and a campaign rescheduled into the future is left alone.
func (s *Store) ClaimCampaign(ctx context.Context, campaignID uuid.UUID, now time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimCampaign, campaignID, now.UTC())
	if err != nil {
		return false, fmt.Errorf("failed to claim campaign: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

const sqlCancelCampaign = `
UPDATE campaigns
SET status = 'cancelled',
    completed_at = $2,
    updated_at = $2
WHERE id = $1 AND status IN ('scheduled', 'pending', 'running')
`

// CancelCampaign moves a non-terminal campaign to cancelled. It returns false
// when the campaign had already reached a terminal status.
func (s *Store) CancelCampaign(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlCancelCampaign, campaignID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to cancel campaign: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

const sqlTouchCampaign = `
UPDATE campaigns
SET updated_at = $2
WHERE id = $1 AND status = 'running'
`

// TouchCampaign refreshes the heartbeat of a running campaign
func (s *Store) TouchCampaign(ctx context.Context, campaignID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlTouchCampaign, campaignID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to touch campaign: %w", err)
	}
	return nil
}

const sqlReclaimStaleCampaign = `
UPDATE campaigns
SET updated_at = $3
WHERE id = $1 AND status = 'running' AND updated_at < $2
`

// ReclaimStaleCampaign refreshes the heartbeat of a running campaign only if
// it is still older than before, so one recovering process wins.
func (s *Store) ReclaimStaleCampaign(ctx context.Context, campaignID uuid.UUID, before time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlReclaimStaleCampaign, campaignID, before, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to reclaim campaign: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}
