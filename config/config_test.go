package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"

	"github.com/krisalay/ttl-cache/config"
)

var _ = Describe("Config", func() {
	Describe("#Default", func() {
		It("should be valid and carry the sample entries", func() {
			cfg := config.Default()

			Expect(cfg.Validate()).To(Succeed())
			Expect(cfg.TTL).To(Equal(10 * time.Second))
			Expect(cfg.Shards).To(Equal(1))
			Expect(cfg.Demo.Entries).To(HaveLen(5))
			Expect(cfg.Demo.Entries[0]).To(Equal(config.Entry{Key: "k1", Value: "v1"}))
			Expect(cfg.Demo.Entries[4]).To(Equal(config.Entry{Key: "k5", Value: "v5"}))
		})
	})

	Describe("#Parse", func() {
		It("should overlay the file on the defaults", func() {
			cfg, err := config.Parse([]byte(`
ttl: 250ms
shards: 4
metrics:
  enabled: true
  bindAddress: ":9090"
demo:
  entries:
  - key: a
    value: "1"
`))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.TTL).To(Equal(250 * time.Millisecond))
			Expect(cfg.Shards).To(Equal(4))
			Expect(cfg.LogLevel).To(Equal(config.DefaultLogLevel))
			Expect(cfg.Metrics).To(Equal(config.MetricsConfig{
				Enabled:     true,
				Namespace:   config.DefaultNamespace,
				BindAddress: ":9090",
			}))
			Expect(cfg.Demo.Entries).To(ConsistOf(config.Entry{Key: "a", Value: "1"}))
		})

		It("should reject malformed YAML", func() {
			_, err := config.Parse([]byte("ttl: ["))
			Expect(err).To(HaveOccurred())
		})

		DescribeTable("should reject invalid values",
			func(data string) {
				_, err := config.Parse([]byte(data))
				Expect(err).To(MatchError(config.ErrInvalid))
			},
			Entry("zero ttl", "ttl: 0s"),
			Entry("negative ttl", "ttl: -1s"),
			Entry("no shards", "shards: 0"),
			Entry("unknown log level", "logLevel: verbose"),
			Entry("metrics without namespace", "metrics: {enabled: true, namespace: \"\"}"),
			Entry("bind address without metrics", "metrics: {enabled: false, bindAddress: \":9090\"}"),
			Entry("empty demo key", "demo: {entries: [{key: \"\", value: x}]}"),
			Entry("duplicate demo key", "demo: {entries: [{key: a}, {key: a}]}"),
		)
	})

	Describe("#LoadFromFile", func() {
		It("should read the file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
			Expect(os.WriteFile(path, []byte("ttl: 1m\nlogLevel: debug\n"), 0o600)).To(Succeed())

			cfg, err := config.LoadFromFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.TTL).To(Equal(time.Minute))
			Expect(cfg.LogLevel).To(Equal("debug"))
		})

		It("should fail for a missing file", func() {
			_, err := config.LoadFromFile(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
		})
	})

	Describe("#ConfigureLogger", func() {
		AfterEach(func() {
			log.SetLevel(log.InfoLevel)
		})

		DescribeTable("should set the logrus level",
			func(level string, want log.Level) {
				config.ConfigureLogger(level)
				Expect(log.GetLevel()).To(Equal(want))
			},
			Entry("error", "error", log.ErrorLevel),
			Entry("info", "info", log.InfoLevel),
			Entry("debug", "debug", log.DebugLevel),
			Entry("fallback", "chatty", log.InfoLevel),
		)

		It("should enable verbose logr output at debug level", func() {
			config.ConfigureLogger("debug")
			Expect(config.NewLogr().V(1).Enabled()).To(BeTrue())

			config.ConfigureLogger("info")
			Expect(config.NewLogr().V(1).Enabled()).To(BeFalse())
		})
	})
})
