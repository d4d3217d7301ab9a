package config

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	log "github.com/sirupsen/logrus"
)

// ConfigureLogger configures the Logger. The info log level will be ensured if no valid log level passed.
func ConfigureLogger(level string) {
	// Format log output.
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	// Set the log level.
	switch level {
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	default:
		log.Infof("Log level %s can't be applied. Use info log level.", level)
		log.SetLevel(log.InfoLevel)
	}
}

// NewLogr returns a logr.Logger writing through the logrus standard logger.
// At debug level the cache's verbose (V(1) and V(2)) messages are let through.
func NewLogr() logr.Logger {
	verbosity := 0
	if log.IsLevelEnabled(log.DebugLevel) {
		verbosity = 2
	}

	return funcr.New(func(prefix, args string) {
		entry := log.NewEntry(log.StandardLogger())
		if prefix != "" {
			entry = entry.WithField("logger", prefix)
		}
		entry.Info(args)
	}, funcr.Options{Verbosity: verbosity})
}
