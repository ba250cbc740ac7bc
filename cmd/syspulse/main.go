package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"syspulse/internal/agent"
	"syspulse/internal/config"
	"syspulse/internal/logger"
	"syspulse/internal/metrics"
	"syspulse/internal/storage/snapshot"
	"syspulse/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Info("syspulse: starting...", "agent_id", cfg.AgentID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.NewSqliteDB(cfg.DBPath, appLog)
	if err != nil {
		appLog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		log.Fatal(err)
	}

	repo := sqlite.NewMetricsRepository(db)
	defer repo.Close()

	sampler := metrics.NewSampler(appLog)
	snap := snapshot.NewMetricsStore()

	runner := agent.NewRunner(cfg, appLog, sampler, repo, snap)
	reporter := agent.NewStatusReporter(cfg.StatusInterval, appLog, snap)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return runner.Run(gCtx)
	})

	g.Go(func() error {
		return reporter.Run(gCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		appLog.Error("agent failed unexpectedly", "error", err)
	}

	appLog.Info("agent stopped gracefully.")
}
