// Package config defines the configuration structure for the async-pool-agent.
//
// Configuration is organized into logical sections (Pool, Scheduler, Join,
// Server) and uses code generation via optgen to create functional option
// helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Pool           - worker pool sizing and saturation policy
//	├── Scheduler      - tick timing for both handlers
//	├── Join           - fan-out timeouts and simulated latencies
//	├── Server         - ops API settings
//	│   └── Auth       - bearer token check on /api/v1
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Pool Configuration
//
//	┌──────────────────┬─────────────────┬────────────────────────────────────────┐
//	│ Field            │ Default         │ Description                            │
//	├──────────────────┼─────────────────┼────────────────────────────────────────┤
//	│ CoreSize         │ 8               │ Workers kept alive when idle           │
//	│ MaxSize          │ 10              │ Upper bound on concurrent workers      │
//	│ QueueCapacity    │ 20              │ Tasks waiting for a worker             │
//	│ IdleTimeout      │ 10s             │ Idle time before a burst worker exits  │
//	│ NamePrefix       │ "async-thread-" │ Worker name prefix                     │
//	│ RejectionPolicy  │ "discard"       │ discard|abort|caller-runs|             │
//	│                  │                 │ discard-oldest                         │
//	└──────────────────┴─────────────────┴────────────────────────────────────────┘
//
// # Scheduler Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ InitialDelay     │ 10ms    │ Delay before the first tick            │
//	│ Period           │ 1s      │ Fixed tick period                      │
//	│ SkipOverlapping  │ false   │ Skip a tick while the last one runs    │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Join Configuration
//
//	┌──────────────────────┬─────────┬────────────────────────────────────┐
//	│ Field                │ Default │ Description                        │
//	├──────────────────────┼─────────┼────────────────────────────────────┤
//	│ TaskTimeout          │ 5s      │ Per-slot deadline from submission  │
//	│ SoftDeadline         │ 4s      │ Round wait that only logs a warning│
//	│ CallLatency          │ 3s      │ Simulated remote call latency      │
//	│ FireAndForgetLatency │ 1s      │ Simulated fire-and-forget latency  │
//	└──────────────────────┴─────────┴────────────────────────────────────┘
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	│ Auth.Enabled     │ false   │ Require an HS256 bearer token          │
//	│ Auth.SecretFile  │ ""      │ File holding the token signing secret  │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Pool Scheduler Join Server Authentication
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption)
//   - WithPool(Pool), WithJoin(Join), WithCoreSize(int), etc.
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithPool(*config.NewPoolWithOptionsAndDefaults(
//	        config.WithCoreSize(4),
//	        config.WithRejectionPolicy("abort"),
//	    )),
//	    config.WithLogLevel("info"),
//	)
//	if err := cfg.Validate(); err != nil { ... }
//	poolCfg, _ := cfg.PoolConfig()
package config
