package main

import (
	"errors"
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kubev2v/async-pool-agent/internal/config"
)

// registerFlags binds every configuration field to a flag, starting from
// the defaults already in cfg.
func registerFlags(fs *pflag.FlagSet, cfg *config.Configuration) {
	fs.String("config-file", "", "path to a config file (yaml, json or toml) keyed by flag name")

	fs.IntVar(&cfg.Pool.CoreSize, "pool-core-size", cfg.Pool.CoreSize, "workers kept alive when idle")
	fs.IntVar(&cfg.Pool.MaxSize, "pool-max-size", cfg.Pool.MaxSize, "maximum number of workers")
	fs.IntVar(&cfg.Pool.QueueCapacity, "pool-queue-capacity", cfg.Pool.QueueCapacity, "tasks waiting for a worker (0 = hand-off)")
	fs.DurationVar(&cfg.Pool.IdleTimeout, "pool-idle-timeout", cfg.Pool.IdleTimeout, "idle time before a burst worker exits")
	fs.StringVar(&cfg.Pool.NamePrefix, "pool-name-prefix", cfg.Pool.NamePrefix, "worker name prefix")
	fs.StringVar(&cfg.Pool.RejectionPolicy, "pool-rejection-policy", cfg.Pool.RejectionPolicy, "discard, abort, caller-runs or discard-oldest")

	fs.DurationVar(&cfg.Scheduler.InitialDelay, "scheduler-initial-delay", cfg.Scheduler.InitialDelay, "delay before the first tick")
	fs.DurationVar(&cfg.Scheduler.Period, "scheduler-period", cfg.Scheduler.Period, "tick period")
	fs.BoolVar(&cfg.Scheduler.SkipOverlapping, "scheduler-skip-overlapping", cfg.Scheduler.SkipOverlapping, "skip a tick while the previous one is running")

	fs.DurationVar(&cfg.Join.TaskTimeout, "join-task-timeout", cfg.Join.TaskTimeout, "per-slot deadline from submission")
	fs.DurationVar(&cfg.Join.SoftDeadline, "join-soft-deadline", cfg.Join.SoftDeadline, "round wait after which a warning is logged")
	fs.DurationVar(&cfg.Join.CallLatency, "join-call-latency", cfg.Join.CallLatency, "simulated remote call latency")
	fs.DurationVar(&cfg.Join.FireAndForgetLatency, "join-fire-and-forget-latency", cfg.Join.FireAndForgetLatency, "simulated fire-and-forget latency")

	fs.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "dev or prod")
	fs.IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "ops API listen port")
	fs.BoolVar(&cfg.Server.Auth.Enabled, "auth-enabled", cfg.Server.Auth.Enabled, "require a bearer token on /api/v1")
	fs.StringVar(&cfg.Server.Auth.SecretFile, "auth-secret-file", cfg.Server.Auth.SecretFile, "file holding the HS256 token secret")

	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console or json")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
}

// syncFlagsPreRunE fills unset flags from the environment, then from the
// config file.
func syncFlagsPreRunE() cobrautil.CobraRunFunc {
	return cobrautil.CommandStack(
		cobrautil.SyncViperPreRunE(envPrefix),
		syncConfigFile,
	)
}

func syncConfigFile(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config-file")
	if err != nil || path == "" {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("config file key %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
