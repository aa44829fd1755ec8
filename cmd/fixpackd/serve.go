package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/api"
	"github.com/onlook-dev/fixpack-pipeline/internal/config"
	"github.com/onlook-dev/fixpack-pipeline/internal/events"
	"github.com/onlook-dev/fixpack-pipeline/internal/orchestrator"
	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/service"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/models"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const janitorInterval = time.Minute

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the worker pools and the queue janitor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := openDatabase(ctx, cfg, store.DefaultServerOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	connector, err := newConnector(cfg)
	if err != nil {
		return err
	}
	if !cfg.HasGitHubCredential() {
		logger.Warn("no GitHub credential configured; apply runs will fail until one is set")
	}

	var (
		q        = queue.New(db)
		runs     = &store.ApplyRuns{DB: db}
		fixPacks = &store.FixPacks{DB: db}
		audits   = &store.Audits{DB: db}
		credits  = &store.Credits{DB: db}
		hosting  = service.NewFactory(connector, cfg.RepairLabel)
		bus      = events.NewBus()
	)

	orch := orchestrator.New(fixPacks, runs, q, hosting, orchestrator.Config{
		BranchPrefix:       cfg.BranchPrefix,
		MonitorMaxAttempts: cfg.Monitor.MaxAttempts,
	}, logger)
	monitor := orchestrator.NewMonitor(runs, hosting, monitorWaiter(cfg, bus, logger), logger)
	starter := orchestrator.NewStarter(audits, fixPacks, credits, runs, q, orchestrator.StarterConfig{
		CreditCost:       cfg.Apply.CreditCost,
		ApplyMaxAttempts: cfg.Apply.MaxAttempts,
	}, logger)

	backoff := queue.Backoff{Base: cfg.Apply.BackoffBase, Max: cfg.Apply.BackoffMax, Jitter: 0.2}
	applyPool := queue.NewPool(q, queue.PoolConfig{
		Class:           models.JobClassApply,
		Concurrency:     cfg.Apply.Concurrency,
		Backoff:         backoff,
		PollInterval:    cfg.Queue.PollInterval,
		Lease:           cfg.Queue.Lease,
		ShutdownTimeout: cfg.Queue.ShutdownTimeout,
	}, orchestrator.ApplyHandler(orch), logger)
	monitorPool := queue.NewPool(q, queue.PoolConfig{
		Class:           models.JobClassMonitor,
		Concurrency:     cfg.Monitor.Concurrency,
		Backoff:         backoff,
		PollInterval:    cfg.Queue.PollInterval,
		Lease:           cfg.Queue.Lease,
		ShutdownTimeout: cfg.Queue.ShutdownTimeout,
	}, orchestrator.MonitorHandler(monitor, orchestrator.MonitorSettings{
		PollAttempts: cfg.Monitor.PollAttempts,
		PollInterval: cfg.Monitor.PollInterval,
	}), logger)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: api.NewRouter(api.Deps{
			Starter:       starter,
			Runs:          runs,
			Bus:           bus,
			WebhookSecret: cfg.GitHub.WebhookSecret,
			Logger:        logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return applyPool.Run(gctx) })
	g.Go(func() error { return monitorPool.Run(gctx) })
	g.Go(func() error {
		return queue.RunJanitor(gctx, q, queue.JanitorConfig{
			Interval:           janitorInterval,
			Lease:              cfg.Queue.Lease,
			CompletedRetention: cfg.Queue.CompletedRetention,
			FailedRetention:    cfg.Queue.FailedRetention,
			OnLost:             orchestrator.LostJobHandler(runs, logger),
		}, logger)
	})
	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Queue.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	logger.Info("fixpackd stopped")
	return err
}

// monitorWaiter listens for check webhooks only when deliveries are signed.
func monitorWaiter(cfg *config.Config, bus *events.Bus, logger *slog.Logger) orchestrator.Waiter {
	if cfg.GitHub.WebhookSecret == "" {
		logger.Warn("GITHUB_WEBHOOK_SECRET not set; webhooks disabled, CI is polled on the interval")
		return orchestrator.PollWaiter{}
	}
	return orchestrator.EventWaiter{Bus: bus}
}
