package campaign

import (
	"context"
	"fmt"
	"sync"
	"time"

	"campaign-server/internal/metrics"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"

	"github.com/google/uuid"
)

// DefaultStaleAfter exceeds one full rate window, so a campaign waiting on a
// saturated window is never mistaken for a dead one
const DefaultStaleAfter = 90 * time.Minute

// SchedulerStore defines the database operations required by Scheduler
type SchedulerStore interface {
	GetDueCampaigns(ctx context.Context, now time.Time) ([]store.Campaign, error)
	ClaimCampaign(ctx context.Context, campaignID uuid.UUID, now time.Time) (bool, error)
	CancelCampaign(ctx context.Context, campaignID uuid.UUID) (bool, error)
	GetStaleRunningCampaigns(ctx context.Context, before time.Time) ([]store.Campaign, error)
	ReclaimStaleCampaign(ctx context.Context, campaignID uuid.UUID, before time.Time) (bool, error)
}

// CampaignLauncher hands a claimed campaign to a dispatcher
type CampaignLauncher interface {
	Launch(ctx context.Context, campaignID uuid.UUID) error
}

// Scheduler periodically claims due campaigns and launches them. Any number
// of schedulers may run at once; the conditional claim picks one winner.
type Scheduler struct {
	store         SchedulerStore
	launcher      CampaignLauncher
	logger        *observability.Logger
	checkInterval time.Duration
	staleAfter    time.Duration
	now           func() time.Time
	stopChan      chan struct{}
	stopOnce      sync.Once
}

// NewScheduler creates a new campaign scheduler
func NewScheduler(
	store SchedulerStore,
	launcher CampaignLauncher,
	logger *observability.Logger,
	checkInterval time.Duration,
	staleAfter time.Duration,
) *Scheduler {
	if checkInterval <= 0 {
		checkInterval = 30 * time.Second
	}
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}

	return &Scheduler{
		store:         store,
		launcher:      launcher,
		logger:        logger,
		checkInterval: checkInterval,
		staleAfter:    staleAfter,
		now:           time.Now,
		stopChan:      make(chan struct{}),
	}
}

// Start runs the scheduler loop until ctx is done or Stop is called
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info(ctx, fmt.Sprintf("Starting campaign scheduler with %v interval", s.checkInterval))

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	// Run immediately on start
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Campaign scheduler stopping: context cancelled")
			return
		case <-s.stopChan:
			s.logger.Info(ctx, "Campaign scheduler stopping: stop signal received")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// Stop signals the scheduler to stop
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.ProcessDueCampaigns(ctx); err != nil {
		s.logger.Error(ctx, "Scheduler tick failed", err)
	}
}

// ProcessDueCampaigns claims and launches every due campaign, then recovers
// running campaigns whose heartbeat went stale. A failure on one campaign
// cancels that campaign and never stops the tick.
func (s *Scheduler) ProcessDueCampaigns(ctx context.Context) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "process_due_campaigns"},
	)

	now := s.now().UTC()
	due, err := s.store.GetDueCampaigns(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to get due campaigns: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info(ctx, fmt.Sprintf("Found %d due campaigns", len(due)))
	}
	for _, c := range due {
		s.isolate(ctx, c.ID, func(ctx context.Context, campaignID uuid.UUID) error {
			return s.claimAndLaunch(ctx, campaignID, now)
		})
	}

	s.recoverStale(ctx, now)
	return nil
}

func (s *Scheduler) claimAndLaunch(ctx context.Context, campaignID uuid.UUID, now time.Time) error {
	claimed, err := s.store.ClaimCampaign(ctx, campaignID, now)
	if err != nil {
		metrics.CampaignClaimsTotal.WithLabelValues(metrics.ClaimError).Inc()
		return fmt.Errorf("failed to claim campaign: %w", err)
	}
	if !claimed {
		metrics.CampaignClaimsTotal.WithLabelValues(metrics.ClaimConflict).Inc()
		s.logger.Debug(ctx, "campaign already claimed elsewhere")
		return nil
	}
	metrics.CampaignClaimsTotal.WithLabelValues(metrics.ClaimWon).Inc()

	if err := s.launcher.Launch(ctx, campaignID); err != nil {
		return fmt.Errorf("failed to launch campaign: %w", err)
	}
	s.logger.Info(ctx, "campaign claimed and launched")
	return nil
}

func (s *Scheduler) recoverStale(ctx context.Context, now time.Time) {
	before := now.Add(-s.staleAfter)
	stale, err := s.store.GetStaleRunningCampaigns(ctx, before)
	if err != nil {
		s.logger.Error(ctx, "failed to get stale campaigns", err)
		return
	}

	for _, c := range stale {
		s.isolate(ctx, c.ID, func(ctx context.Context, campaignID uuid.UUID) error {
			reclaimed, err := s.store.ReclaimStaleCampaign(ctx, campaignID, before)
			if err != nil {
				return fmt.Errorf("failed to reclaim campaign: %w", err)
			}
			if !reclaimed {
				return nil
			}
			metrics.CampaignClaimsTotal.WithLabelValues(metrics.ClaimRecovery).Inc()
			s.logger.Warn(ctx, "relaunching stale running campaign")
			if err := s.launcher.Launch(ctx, campaignID); err != nil {
				return fmt.Errorf("failed to relaunch campaign: %w", err)
			}
			return nil
		})
	}
}

// isolate runs fn for one campaign, turning an error or panic into a
// cancelled campaign
func (s *Scheduler) isolate(ctx context.Context, campaignID uuid.UUID, fn func(context.Context, uuid.UUID) error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	err := func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("panic: %v", rec)
			}
		}()
		return fn(ctx, campaignID)
	}()
	if err == nil {
		return
	}

	s.logger.Error(ctx, "campaign scheduling failed, cancelling campaign", err)
	if _, cancelErr := s.store.CancelCampaign(context.WithoutCancel(ctx), campaignID); cancelErr != nil {
		s.logger.Error(ctx, "failed to cancel campaign", cancelErr)
	}
}
