package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/async-pool-agent/internal/config"
	"github.com/kubev2v/async-pool-agent/internal/handlers"
	"github.com/kubev2v/async-pool-agent/internal/metrics"
	"github.com/kubev2v/async-pool-agent/internal/server"
	"github.com/kubev2v/async-pool-agent/internal/services"
	"github.com/kubev2v/async-pool-agent/internal/store"
	"github.com/kubev2v/async-pool-agent/internal/store/migrations"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
	"github.com/kubev2v/async-pool-agent/pkg/ticker"
)

const shutdownTimeout = 10 * time.Second

func newRunCmd() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the agent",
		Long: `Start the agent.

Two handlers fire on a fixed period: requestData dispatches one
fire-and-forget task, requestReturnData runs one fan-out round of three
calls joined with a per-call timeout. The ops API serves pool stats and
the round history until the process receives SIGINT or SIGTERM.`,
		PreRunE: syncFlagsPreRunE(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	registerFlags(cmd.Flags(), cfg)

	return cmd
}

func run(parent context.Context, cfg *config.Configuration) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	log := zap.S().Named("main")
	log.Infow("configuration loaded", "config", cfg.DebugMap())

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewDB(store.MemoryDSN)
	if err != nil {
		return err
	}
	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	st := store.NewStore(db)
	defer func() { _ = st.Close() }()

	poolCfg, err := cfg.PoolConfig()
	if err != nil {
		return err
	}
	p, err := pool.New(poolCfg)
	if err != nil {
		return err
	}

	sink := metrics.Multi(metrics.NewLogSink(), metrics.NewStoreSink(st.Rounds()))

	asyncSrv := services.NewAsyncService(p, sink, cfg.Join.FireAndForgetLatency)
	returnSrv := services.NewAsyncReturnService(p, sink, services.SimulatedRemote(cfg.Join.CallLatency))
	coordinator := services.NewJoinCoordinator(returnSrv, p, sink, cfg.Join.TaskTimeout, cfg.Join.SoftDeadline)
	taskSrv := services.NewTaskService(asyncSrv, coordinator)
	roundSrv := services.NewRoundService(st.Rounds(), coordinator)

	tickOpts := []ticker.Option{
		ticker.WithInitialDelay(cfg.Scheduler.InitialDelay),
		ticker.WithPeriod(cfg.Scheduler.Period),
		ticker.WithSkipIfRunning(cfg.Scheduler.SkipOverlapping),
	}
	tickers := []*ticker.Ticker{
		ticker.New("requestData", taskSrv.RequestData, tickOpts...),
		ticker.New("requestReturnData", taskSrv.RequestReturnData, tickOpts...),
	}

	h := handlers.New(roundSrv, p)
	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		handlers.RegisterHandlers(router, h)
	})
	if err != nil {
		p.Close()
		return err
	}

	for _, t := range tickers {
		t.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range tickers {
		t.Stop()
	}
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Warnw("failed to stop server gracefully", "error", err)
	}
	if err := p.Shutdown(shutdownCtx); err != nil {
		log.Warnw("pool did not drain before the shutdown timeout", "error", err, "stats", p.Stats())
	}
	p.Close()

	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	log.Info("shutdown complete")
	return runErr
}
