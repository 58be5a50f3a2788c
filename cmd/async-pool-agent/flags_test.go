package main

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("config command", func() {
	var out *bytes.Buffer

	execute := func(args ...string) error {
		root := newRootCmd()
		out = &bytes.Buffer{}
		root.SetOut(out)
		root.SetArgs(append([]string{"config"}, args...))
		return root.Execute()
	}

	writeConfig := func(content string) string {
		path := filepath.Join(GinkgoT().TempDir(), "agent.yaml")
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
		return path
	}

	It("should print the defaults", func() {
		Expect(execute()).To(Succeed())

		Expect(out.String()).To(ContainSubstring("Pool"))
		Expect(out.String()).To(ContainSubstring("LogFormat"))
	})

	It("should fail on an invalid configuration", func() {
		err := execute("--pool-core-size", "20")

		Expect(err).To(MatchError(ContainSubstring("invalid configuration")))
	})

	// Given a config file, an environment variable and a flag for three settings
	// When the configuration is resolved
	// Then the flag beats the environment and the environment beats the file
	It("should apply flag, environment and file in that order", func() {
		path := writeConfig("pool-core-size: 2\npool-max-size: 6\njoin-task-timeout: 2s\n")
		GinkgoT().Setenv("ASYNC_AGENT_POOL_MAX_SIZE", "5")

		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"config", "--config-file", path, "--pool-core-size", "3"})
		Expect(root.Execute()).To(Succeed())

		cmd, _, err := root.Find([]string{"config"})
		Expect(err).NotTo(HaveOccurred())

		core, _ := cmd.Flags().GetInt("pool-core-size")
		maxSize, _ := cmd.Flags().GetInt("pool-max-size")
		timeout, _ := cmd.Flags().GetDuration("join-task-timeout")
		Expect(core).To(Equal(3))
		Expect(maxSize).To(Equal(5))
		Expect(timeout).To(Equal(2 * time.Second))
	})

	It("should reject an unreadable config file", func() {
		err := execute("--config-file", filepath.Join(GinkgoT().TempDir(), "missing.yaml"))

		Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
	})
})

var _ = Describe("newLogger", func() {
	It("should build console and json loggers at the requested level", func() {
		for _, format := range []string{"console", "json"} {
			logger, err := newLogger(format, "warn")
			Expect(err).NotTo(HaveOccurred())
			Expect(logger.Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
			Expect(logger.Core().Enabled(zapcore.WarnLevel)).To(BeTrue())
		}
	})

	It("should reject an unknown level", func() {
		_, err := newLogger("console", "loud")

		Expect(err).To(HaveOccurred())
	})
})
