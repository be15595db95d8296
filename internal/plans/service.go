package plans

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=plans

import (
	"context"
	"strconv"

	"campaign-server/internal/observability"
	"campaign-server/internal/store"

	"github.com/google/uuid"
)

// PlanStore defines the database operations required by Service
type PlanStore interface {
	GetPlanLimits(ctx context.Context, companyID uuid.UUID) (store.PlanLimits, error)
	GetCompanySettings(ctx context.Context, companyID uuid.UUID) (map[string]string, error)
}

// Service is the read-only source of per-company plan limits and campaign settings
type Service struct {
	store  PlanStore
	logger *observability.Logger
}

// New creates a new Service
func New(store PlanStore, logger *observability.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetPlanLimits retrieves the campaign limits of a company's plan
func (s *Service) GetPlanLimits(ctx context.Context, companyID uuid.UUID) (store.PlanLimits, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_plan_limits"},
		observability.Field{Key: "company_id", Value: companyID.String()},
	)

	limits, err := s.store.GetPlanLimits(ctx, companyID)
	if err != nil {
		s.logger.Error(ctx, "failed to get plan limits", err)
		return store.PlanLimits{}, err
	}
	return limits, nil
}

// GetCampaignSettings reads the company's campaign settings, falling back to
// the defaults for anything absent or unusable
func (s *Service) GetCampaignSettings(ctx context.Context, companyID uuid.UUID) (CampaignSettings, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_campaign_settings"},
		observability.Field{Key: "company_id", Value: companyID.String()},
	)

	raw, err := s.store.GetCompanySettings(ctx, companyID)
	if err != nil {
		s.logger.Error(ctx, "failed to get company settings", err)
		return CampaignSettings{}, err
	}

	settings := CampaignSettings{
		MaxMessagesPerHour: s.positiveSetting(ctx, raw, store.SettingCampaignMaxMessagesPerHour, DefaultMaxMessagesPerHour),
		MinDelaySeconds:    s.nonNegativeSetting(ctx, raw, store.SettingCampaignMinDelaySeconds, DefaultMinDelaySeconds),
		MaxDelaySeconds:    s.nonNegativeSetting(ctx, raw, store.SettingCampaignMaxDelaySeconds, DefaultMaxDelaySeconds),
	}
	if settings.MaxDelaySeconds < settings.MinDelaySeconds {
		s.logger.Warn(ctx, "max delay below min delay, raising it to min")
		settings.MaxDelaySeconds = settings.MinDelaySeconds
	}
	return settings, nil
}

func (s *Service) positiveSetting(ctx context.Context, raw map[string]string, key string, fallback int) int {
	v := s.intSetting(ctx, raw, key, fallback)
	if v <= 0 {
		return fallback
	}
	return v
}

func (s *Service) nonNegativeSetting(ctx context.Context, raw map[string]string, key string, fallback int) int {
	v := s.intSetting(ctx, raw, key, fallback)
	if v < 0 {
		return fallback
	}
	return v
}

func (s *Service) intSetting(ctx context.Context, raw map[string]string, key string, fallback int) int {
	value, ok := raw[key]
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		s.logger.Warn(ctx, "ignoring unparsable setting", observability.Field{Key: "setting", Value: key})
		return fallback
	}
	return parsed
}
