package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/Domenick1991/alkawthar/config"
	"github.com/sirupsen/logrus"
)

// Setup configures the package-level logrus logger.
func Setup(cfg config.LogConfig) error {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
	return nil
}
