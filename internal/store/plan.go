package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetPlanLimits = `
SELECT p.use_campaigns, p.campaign_contacts_limit, p.campaigns_per_month_limit
FROM companies c
JOIN plans p ON p.id = c.plan_id
WHERE c.id = $1
`

// GetPlanLimits retrieves the campaign limits of the company's current plan
func (s *Store) GetPlanLimits(ctx context.Context, companyID uuid.UUID) (PlanLimits, error) {
	var limits PlanLimits
	err := s.db.GetContext(ctx, &limits, sqlGetPlanLimits, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PlanLimits{}, ErrNotFound
		}
		return PlanLimits{}, fmt.Errorf("failed to get plan limits: %w", err)
	}
	return limits, nil
}

const sqlGetCompanySettings = `
SELECT key, value
FROM company_settings
WHERE company_id = $1
`

// GetCompanySettings returns all settings of a company keyed by name
func (s *Store) GetCompanySettings(ctx context.Context, companyID uuid.UUID) (map[string]string, error) {
	var rows []CompanySetting
	err := s.db.SelectContext(ctx, &rows, sqlGetCompanySettings, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company settings: %w", err)
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}
