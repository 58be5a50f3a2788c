package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/async-pool-agent/internal/config"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

var _ = Describe("Configuration", func() {
	Context("defaults", func() {
		// Given no options
		// When the configuration is created with defaults
		// Then every section carries the documented defaults
		It("should apply the documented defaults", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.Pool.CoreSize).To(Equal(8))
			Expect(cfg.Pool.MaxSize).To(Equal(10))
			Expect(cfg.Pool.QueueCapacity).To(Equal(20))
			Expect(cfg.Pool.IdleTimeout).To(Equal(10 * time.Second))
			Expect(cfg.Pool.NamePrefix).To(Equal("async-thread-"))
			Expect(cfg.Pool.RejectionPolicy).To(Equal("discard"))

			Expect(cfg.Scheduler.InitialDelay).To(Equal(10 * time.Millisecond))
			Expect(cfg.Scheduler.Period).To(Equal(time.Second))
			Expect(cfg.Scheduler.SkipOverlapping).To(BeFalse())

			Expect(cfg.Join.TaskTimeout).To(Equal(5 * time.Second))
			Expect(cfg.Join.SoftDeadline).To(Equal(4 * time.Second))
			Expect(cfg.Join.CallLatency).To(Equal(3 * time.Second))
			Expect(cfg.Join.FireAndForgetLatency).To(Equal(time.Second))

			Expect(cfg.Server.HTTPPort).To(Equal(8000))
			Expect(cfg.Server.ServerMode).To(Equal(config.ServerModeDev))
			Expect(cfg.Server.Auth.Enabled).To(BeFalse())
			Expect(cfg.LogFormat).To(Equal(config.LogFormatConsole))

			Expect(cfg.Validate()).To(Succeed())
		})

		It("should let options override defaults", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithPool(*config.NewPoolWithOptionsAndDefaults(config.WithCoreSize(2), config.WithMaxSize(4))),
				config.WithLogLevel("info"),
			)

			Expect(cfg.Pool.CoreSize).To(Equal(2))
			Expect(cfg.Pool.MaxSize).To(Equal(4))
			Expect(cfg.Pool.QueueCapacity).To(Equal(20))
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.Join.TaskTimeout).To(Equal(5 * time.Second))
		})
	})

	Context("PoolConfig", func() {
		It("should convert the pool section", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Pool.RejectionPolicy = "caller-runs"

			poolCfg, err := cfg.PoolConfig()

			Expect(err).NotTo(HaveOccurred())
			Expect(poolCfg.CoreSize).To(Equal(8))
			Expect(poolCfg.RejectionPolicy).To(Equal(pool.PolicyCallerRuns))
		})

		It("should reject an unknown policy", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Pool.RejectionPolicy = "block"

			_, err := cfg.PoolConfig()

			Expect(err).To(HaveOccurred())
		})
	})

	DescribeTable("Validate",
		func(mutate func(c *config.Configuration), valid bool) {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			mutate(cfg)
			if valid {
				Expect(cfg.Validate()).To(Succeed())
			} else {
				Expect(cfg.Validate()).NotTo(Succeed())
			}
		},
		Entry("core above max", func(c *config.Configuration) { c.Pool.CoreSize = 11 }, false),
		Entry("negative queue", func(c *config.Configuration) { c.Pool.QueueCapacity = -1 }, false),
		Entry("hand-off queue", func(c *config.Configuration) { c.Pool.QueueCapacity = 0 }, true),
		Entry("zero period", func(c *config.Configuration) { c.Scheduler.Period = 0 }, false),
		Entry("zero task timeout", func(c *config.Configuration) { c.Join.TaskTimeout = 0 }, false),
		Entry("json logs", func(c *config.Configuration) { c.LogFormat = config.LogFormatJSON }, true),
		Entry("unknown log format", func(c *config.Configuration) { c.LogFormat = "xml" }, false),
		Entry("unknown server mode", func(c *config.Configuration) { c.Server.ServerMode = "staging" }, false),
		Entry("port out of range", func(c *config.Configuration) { c.Server.HTTPPort = 70000 }, false),
		Entry("auth without secret", func(c *config.Configuration) { c.Server.Auth.Enabled = true }, false),
		Entry("auth with secret", func(c *config.Configuration) {
			c.Server.Auth.Enabled = true
			c.Server.Auth.SecretFile = "/etc/agent/secret"
		}, true),
	)

	Context("DebugMap", func() {
		It("should expose every section", func() {
			m := config.NewConfigurationWithOptionsAndDefaults().DebugMap()

			Expect(m).To(HaveKey("Pool"))
			Expect(m).To(HaveKey("Scheduler"))
			Expect(m).To(HaveKey("Join"))
			Expect(m).To(HaveKey("Server"))
			Expect(m).To(HaveKey("LogFormat"))
		})
	})
})
