package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetUndeliveredContacts = `
SELECT cli.id, cli.contact_list_id, cli.company_id, cli.name, cli.number, cli.email, cli.is_whatsapp_valid, cli.created_at, cli.updated_at
FROM contact_list_items cli
WHERE cli.contact_list_id = $2
  AND cli.is_whatsapp_valid = TRUE
  AND NOT EXISTS (
    SELECT 1 FROM campaign_deliveries d
    WHERE d.campaign_id = $1 AND d.contact_list_item_id = cli.id
  )
ORDER BY cli.created_at ASC, cli.id ASC
`

// GetUndeliveredContacts returns the valid contacts of the campaign's list
// that have no delivery record yet, in insertion order
func (s *Store) GetUndeliveredContacts(ctx context.Context, campaignID, contactListID uuid.UUID) ([]ContactListItem, error) {
	var items []ContactListItem
	err := s.db.SelectContext(ctx, &items, sqlGetUndeliveredContacts, campaignID, contactListID)
	if err != nil {
		return nil, fmt.Errorf("failed to get undelivered contacts: %w", err)
	}
	return items, nil
}

// RecordDeliveryParams represents the outcome of one send
type RecordDeliveryParams struct {
	CampaignID        uuid.UUID
	ContactListItemID uuid.UUID
	Number            string
	Message           string
	Status            string
	ErrorMessage      *string
}

const sqlRecordDelivery = `
INSERT INTO campaign_deliveries (campaign_id, contact_list_item_id, number, message, status, error_message)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (campaign_id, contact_list_item_id) DO NOTHING
`

// RecordDelivery stores a delivery outcome. A second record for the same
// contact is ignored.
func (s *Store) RecordDelivery(ctx context.Context, params RecordDeliveryParams) error {
	_, err := s.db.ExecContext(ctx, sqlRecordDelivery,
		params.CampaignID,
		params.ContactListItemID,
		params.Number,
		params.Message,
		params.Status,
		params.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}
	return nil
}

const sqlGetCampaignDeliveryStats = `
SELECT
  COUNT(*) FILTER (WHERE status = 'sent') AS sent,
  COUNT(*) FILTER (WHERE status = 'failed') AS failed
FROM campaign_deliveries
WHERE campaign_id = $1
`

// GetCampaignDeliveryStats aggregates delivery outcomes for a campaign
func (s *Store) GetCampaignDeliveryStats(ctx context.Context, campaignID uuid.UUID) (CampaignDeliveryStats, error) {
	var stats CampaignDeliveryStats
	err := s.db.GetContext(ctx, &stats, sqlGetCampaignDeliveryStats, campaignID)
	if err != nil {
		return CampaignDeliveryStats{}, fmt.Errorf("failed to get delivery stats: %w", err)
	}
	return stats, nil
}
