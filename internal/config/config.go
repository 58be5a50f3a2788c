package config

import (
	"fmt"
	"time"

	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Pool Scheduler Join Server Authentication

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"

	ServerModeDev  = "dev"
	ServerModeProd = "prod"
)

type Configuration struct {
	Pool      Pool      `debugmap:"visible"`
	Scheduler Scheduler `debugmap:"visible"`
	Join      Join      `debugmap:"visible"`
	Server    Server    `debugmap:"visible"`
	LogFormat string    `debugmap:"visible" default:"console"`
	LogLevel  string    `debugmap:"visible" default:"debug"`
}

type Pool struct {
	CoreSize        int           `debugmap:"visible" default:"8"`
	MaxSize         int           `debugmap:"visible" default:"10"`
	QueueCapacity   int           `debugmap:"visible" default:"20"`
	IdleTimeout     time.Duration `debugmap:"visible" default:"10s"`
	NamePrefix      string        `debugmap:"visible" default:"async-thread-"`
	RejectionPolicy string        `debugmap:"visible" default:"discard"`
}

type Scheduler struct {
	InitialDelay    time.Duration `debugmap:"visible" default:"10ms"`
	Period          time.Duration `debugmap:"visible" default:"1s"`
	SkipOverlapping bool          `debugmap:"visible" default:"false"`
}

type Join struct {
	TaskTimeout          time.Duration `debugmap:"visible" default:"5s"`
	SoftDeadline         time.Duration `debugmap:"visible" default:"4s"`
	CallLatency          time.Duration `debugmap:"visible" default:"3s"`
	FireAndForgetLatency time.Duration `debugmap:"visible" default:"1s"`
}

type Server struct {
	ServerMode string         `debugmap:"visible" default:"dev"`
	HTTPPort   int            `debugmap:"visible" default:"8000"`
	Auth       Authentication `debugmap:"visible"`
}

type Authentication struct {
	Enabled    bool   `debugmap:"visible" default:"false"`
	SecretFile string `debugmap:"visible" default:""`
}

// PoolConfig converts the pool section into a pool.Config.
func (c *Configuration) PoolConfig() (pool.Config, error) {
	policy, err := pool.ParseRejectionPolicy(c.Pool.RejectionPolicy)
	if err != nil {
		return pool.Config{}, err
	}
	return pool.Config{
		CoreSize:        c.Pool.CoreSize,
		MaxSize:         c.Pool.MaxSize,
		QueueCapacity:   c.Pool.QueueCapacity,
		IdleTimeout:     c.Pool.IdleTimeout,
		NamePrefix:      c.Pool.NamePrefix,
		RejectionPolicy: policy,
	}, nil
}

func (c *Configuration) Validate() error {
	poolCfg, err := c.PoolConfig()
	if err != nil {
		return err
	}
	if err := poolCfg.Validate(); err != nil {
		return err
	}

	if c.Scheduler.Period <= 0 {
		return fmt.Errorf("scheduler period must be positive, got %s", c.Scheduler.Period)
	}
	if c.Scheduler.InitialDelay < 0 {
		return fmt.Errorf("scheduler initial delay must not be negative, got %s", c.Scheduler.InitialDelay)
	}
	if c.Join.TaskTimeout <= 0 {
		return fmt.Errorf("task timeout must be positive, got %s", c.Join.TaskTimeout)
	}
	if c.Join.SoftDeadline < 0 {
		return fmt.Errorf("soft deadline must not be negative, got %s", c.Join.SoftDeadline)
	}

	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be %q or %q", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}

	switch c.Server.ServerMode {
	case ServerModeDev, ServerModeProd:
	default:
		return fmt.Errorf("invalid server mode %q: must be %q or %q", c.Server.ServerMode, ServerModeDev, ServerModeProd)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	if c.Server.Auth.Enabled && c.Server.Auth.SecretFile == "" {
		return fmt.Errorf("authentication is enabled but no secret file is set")
	}

	return nil
}
