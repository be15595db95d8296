package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"campaign-server/internal/admission"
	authHandler "campaign-server/internal/auth/handler"
	authProcessor "campaign-server/internal/auth/processor"
	campaignHandler "campaign-server/internal/campaign/handler"
	campaignProcessor "campaign-server/internal/campaign/processor"
	kafkaClient "campaign-server/internal/clients/kafka"
	redisClient "campaign-server/internal/clients/redis"
	"campaign-server/internal/config"
	contactListHandler "campaign-server/internal/contactlists/handler"
	contactListProcessor "campaign-server/internal/contactlists/processor"
	"campaign-server/internal/jobs"
	"campaign-server/internal/observability"
	"campaign-server/internal/plans"
	"campaign-server/internal/progress"
	"campaign-server/internal/ratelimit"
	"campaign-server/internal/store"
	"campaign-server/internal/whatsapp"
	campaignWorker "campaign-server/internal/workers/campaign"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler        authHandler.Handler
	CampaignHandler    campaignHandler.Handler
	ContactListHandler contactListHandler.Handler
	ProgressHub        *progress.Hub

	// Campaign execution
	Sessions   *whatsapp.Manager
	Dispatcher *campaignWorker.Dispatcher
	Deferred   *campaignWorker.DeferredRunner
	Launcher   *campaignWorker.Launcher
	Scheduler  *campaignWorker.Scheduler
	Notifier   progress.Notifier

	// Clients (for cleanup)
	JobClient     *jobs.Client
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	KafkaNotifier *progress.KafkaNotifier
	KafkaConsumer *kafkaClient.Consumer
}

// Initialize sets up everything the API server and the worker share. The
// HTTP handlers are built as well; the worker simply does not mount them.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Redis for the shared send window. A nil client keeps the
	// window in memory.
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Error(ctx, "redis unavailable, using in-memory send window", err)
		deps.RedisClient = nil
	}

	// Initialize progress fan-out. With Kafka every process publishes to the
	// stream and API instances relay it to their WebSocket clients; without
	// it events go straight to the local hub.
	deps.ProgressHub = progress.NewHub(cfg.Services.WebAppURI, logger)
	deps.Notifier = deps.ProgressHub
	if cfg.Kafka.Brokers != "" {
		brokers := strings.Split(cfg.Kafka.Brokers, ",")
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.ProgressTopic,
		}, logger)
		deps.KafkaNotifier = progress.NewKafkaNotifier(deps.KafkaProducer, 256, logger)
		deps.Notifier = deps.KafkaNotifier

		relay := progress.NewRelay(deps.ProgressHub, logger)
		deps.KafkaConsumer = kafkaClient.NewConsumer(kafkaClient.ConsumerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.ProgressTopic,
			GroupID: cfg.Kafka.RelayGroup,
		}, relay.HandleMessage, logger)
	}

	// Initialize WhatsApp sessions
	deps.Sessions = whatsapp.NewManager(&deps.Store, whatsapp.NewTwilioFactory(cfg.Twilio, logger), logger)
	if err := deps.Sessions.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load whatsapp connections: %w", err)
	}

	// Initialize plans and admission control
	planService := plans.New(&deps.Store, logger)
	limits := admission.New(planService, &deps.Store, logger)

	// Initialize campaign execution
	limiter := ratelimit.NewSendLimiter(ratelimit.NewWindow(deps.RedisClient, logger), logger)
	deps.Dispatcher = campaignWorker.NewDispatcher(&deps.Store, planService, deps.Sessions, limiter, deps.Notifier, logger)
	deps.Deferred = campaignWorker.NewDeferredRunner(logger)

	var queue campaignWorker.Enqueuer
	if cfg.QueueEnabled() {
		deps.JobClient = jobs.NewClient(cfg.Queue.RedisAddr, logger)
		queue = deps.JobClient
	}
	deps.Launcher = campaignWorker.NewLauncher(queue, deps.Deferred, deps.Dispatcher, &deps.Store, cfg.Scheduler.InProcessDelay, logger)
	deps.Scheduler = campaignWorker.NewScheduler(&deps.Store, deps.Launcher, logger, cfg.Scheduler.Interval, cfg.Scheduler.StaleAfter)

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, limits, deps.Launcher, logger)
	deps.CampaignHandler = campaignHandler.New(&campaignProc, logger)

	// Initialize contact list processor and handler
	contactListProc := contactListProcessor.New(&deps.Store, limits, deps.Sessions, deps.Notifier, cfg.Validation.CheckInterval, logger)
	deps.ContactListHandler = contactListHandler.New(&contactListProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup. Deferred campaign runs are
// given until ctx expires to observe their cancellation.
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.Scheduler != nil {
		d.Scheduler.Stop()
	}
	if d.Deferred != nil {
		if err := d.Deferred.Stop(ctx); err != nil {
			d.Logger.Error(ctx, "deferred campaign runs did not stop in time", err)
		}
	}
	if d.KafkaConsumer != nil {
		d.KafkaConsumer.Close()
	}
	if d.KafkaNotifier != nil {
		d.KafkaNotifier.Close()
	}
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.JobClient != nil {
		d.JobClient.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
