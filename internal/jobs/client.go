package jobs

import (
	"context"
	"fmt"

	"campaign-server/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueCampaignDispatch enqueues a campaign dispatch job
func (c *Client) EnqueueCampaignDispatch(ctx context.Context, payload CampaignDispatchPayload) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: payload.CampaignID.String()},
	)

	task, err := NewCampaignDispatchTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create campaign dispatch task", err)
		return fmt.Errorf("failed to create campaign dispatch task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue campaign dispatch task", err)
		return fmt.Errorf("failed to enqueue campaign dispatch task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued campaign dispatch task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
