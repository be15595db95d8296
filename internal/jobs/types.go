package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCampaignDispatch      = "campaign:dispatch"
	TypeCampaignSchedulerTick = "campaign:scheduler_tick"
)

// Queue names
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// CampaignDispatchPayload identifies the campaign a worker should run
type CampaignDispatchPayload struct {
	CampaignID uuid.UUID `json:"campaign_id"`
}

// NewCampaignDispatchTask creates a dispatch task. A campaign runs for up to
// a few hours, so the task gets a long timeout and no automatic retries; a
// failed dispatch cancels the campaign instead.
func NewCampaignDispatchTask(payload CampaignDispatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TypeCampaignDispatch,
		data,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(0),
		asynq.Timeout(24*time.Hour),
	), nil
}

// ParseCampaignDispatchPayload decodes a dispatch task payload
func ParseCampaignDispatchPayload(task *asynq.Task) (CampaignDispatchPayload, error) {
	var payload CampaignDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CampaignDispatchPayload{}, fmt.Errorf("failed to unmarshal dispatch payload: %w", err)
	}
	if payload.CampaignID == uuid.Nil {
		return CampaignDispatchPayload{}, fmt.Errorf("dispatch payload has no campaign id")
	}
	return payload, nil
}

// NewSchedulerTickTask creates the periodic due-campaign scan task
func NewSchedulerTickTask() *asynq.Task {
	return asynq.NewTask(
		TypeCampaignSchedulerTick,
		nil,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(0),
		asynq.Timeout(5*time.Minute),
	)
}
