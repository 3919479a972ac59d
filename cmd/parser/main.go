package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/karpix25/parser-mass/internal/config"
	"github.com/karpix25/parser-mass/internal/notify"
	"github.com/karpix25/parser-mass/internal/scheduler"
	"github.com/karpix25/parser-mass/internal/service"
	"github.com/karpix25/parser-mass/internal/sheets"
	"github.com/karpix25/parser-mass/internal/source/instagram"
	"github.com/karpix25/parser-mass/internal/source/tiktok"
	"github.com/karpix25/parser-mass/internal/source/youtube"
	"github.com/karpix25/parser-mass/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single pass and exit instead of scheduling")
	accounts := flag.String("accounts", "", "comma-separated target identifiers to restrict the run to")
	platform := flag.String("platform", "", "restrict the run to one platform (instagram, youtube, tiktok)")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ notifier
	notifier, err := notify.NewRabbitMQ(notify.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer notifier.Close()

	// Initialize stores
	videoStore := postgres.NewVideoStore(db, cfg.Database.Schema)
	runStore := postgres.NewRunStore(db, cfg.Database.Schema)
	historyStore := postgres.NewHistoryStore(db, cfg.Database.Schema)
	txManager := postgres.NewTransactionManager(db)

	// Initialize reference data cache
	refs := sheets.New(sheets.NewCSVFetcher(30*time.Second), cfg.Sheets, logger)

	// Initialize platform processors
	processors := []service.Processor{
		service.NewInstagramProcessor(
			instagram.New(cfg.Instagram, logger),
			refs, videoStore, txManager, notifier, logger,
			writePause(cfg.Instagram),
		),
		service.NewYouTubeProcessor(
			youtube.New(cfg.YouTube, logger),
			refs, videoStore, txManager, notifier, logger,
			writePause(cfg.YouTube),
		),
		service.NewTikTokProcessor(
			tiktok.New(cfg.TikTok, logger),
			refs, videoStore, txManager, notifier, logger,
			writePause(cfg.TikTok),
		),
	}

	orchestrator := service.NewOrchestrator(refs, processors, runStore, historyStore, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	targets := splitTargets(*accounts)

	if *once || *platform != "" || len(targets) > 0 {
		runOnce(ctx, orchestrator, *platform, targets, logger)
		return
	}

	sched, err := scheduler.New(orchestrator, cfg.Schedule, logger)
	if err != nil {
		logger.Error("invalid schedule", "error", err)
		os.Exit(1)
	}

	logger.Info("starting video stats parser",
		"day", cfg.Schedule.Day,
		"hour", cfg.Schedule.Hour,
		"minute", cfg.Schedule.Minute,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func runOnce(ctx context.Context, orchestrator *service.Orchestrator, platform string, targets []string, logger *slog.Logger) {
	var err error
	if platform != "" {
		_, err = orchestrator.RunPlatform(ctx, platform, targets)
	} else {
		_, err = orchestrator.RunAll(ctx, targets)
	}
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// writePause derives the inter-write sleep from the platform's request
// budget.
func writePause(api config.APIConfig) time.Duration {
	if api.MaxReqPerMin <= 0 {
		return 0
	}
	return time.Minute / time.Duration(api.MaxReqPerMin)
}

func splitTargets(raw string) []string {
	if raw == "" {
		return nil
	}
	var targets []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
