package store

// Campaign ENUMs
const (
	CampaignStatusScheduled = "scheduled"
	CampaignStatusPending   = "pending"
	CampaignStatusRunning   = "running"
	CampaignStatusFinished  = "finished"
	CampaignStatusCancelled = "cancelled"
)

// Campaign delivery ENUMs
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// WhatsApp connection ENUMs
const (
	ConnectionStatusConnected    = "connected"
	ConnectionStatusDisconnected = "disconnected"
)

// Company setting keys read by the campaign engine
const (
	SettingCampaignMaxMessagesPerHour = "campaignMaxMessagesPerHour"
	SettingCampaignMinDelaySeconds    = "campaignMinDelaySeconds"
	SettingCampaignMaxDelaySeconds    = "campaignMaxDelaySeconds"
)
