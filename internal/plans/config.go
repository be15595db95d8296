package plans

import "time"

// Defaults applied when a company has not configured its campaign settings
const (
	DefaultMaxMessagesPerHour = 30
	DefaultMinDelaySeconds    = 10
	DefaultMaxDelaySeconds    = 30
)

// CampaignSettings are the per-company dispatch settings
type CampaignSettings struct {
	MaxMessagesPerHour int `json:"campaign_max_messages_per_hour"`
	MinDelaySeconds    int `json:"campaign_min_delay_seconds"`
	MaxDelaySeconds    int `json:"campaign_max_delay_seconds"`
}

// DefaultCampaignSettings returns the settings used when none are stored
func DefaultCampaignSettings() CampaignSettings {
	return CampaignSettings{
		MaxMessagesPerHour: DefaultMaxMessagesPerHour,
		MinDelaySeconds:    DefaultMinDelaySeconds,
		MaxDelaySeconds:    DefaultMaxDelaySeconds,
	}
}

// MinDelay returns the lower bound of the inter-send delay
func (s CampaignSettings) MinDelay() time.Duration {
	return time.Duration(s.MinDelaySeconds) * time.Second
}

// MaxDelay returns the upper bound of the inter-send delay
func (s CampaignSettings) MaxDelay() time.Duration {
	return time.Duration(s.MaxDelaySeconds) * time.Second
}
