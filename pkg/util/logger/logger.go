// Package logger builds the zap logger of membank applications from
// typed parameters.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported record encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Default sampling rates.
const (
	DefaultSamplingInitial    = 100
	DefaultSamplingThereafter = 100
)

// Prm groups the parameters of the logger constructor.
type Prm struct {
	// Minimum recorded severity. Unknown values fall back to info.
	Level string

	// Record encoding: FormatJSON (default) or FormatConsole.
	Format string

	// Record sampling rates. Sampling is enabled when at least one
	// rate is positive; an unset rate takes the default.
	SamplingInitial    int
	SamplingThereafter int

	// Optional application identity attached to every record.
	AppName    string
	AppVersion string
}

func safeLevel(lvl string) zap.AtomicLevel {
	switch strings.ToLower(lvl) {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	case "fatal":
		return zap.NewAtomicLevelAt(zap.FatalLevel)
	case "panic":
		return zap.NewAtomicLevelAt(zap.PanicLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// NewLogger is a logger's constructor.
func NewLogger(prm Prm) (*zap.Logger, error) {
	c := zap.NewProductionConfig()

	c.OutputPaths = []string{"stdout"}
	c.ErrorOutputPaths = []string{"stdout"}

	if prm.SamplingInitial > 0 || prm.SamplingThereafter > 0 {
		c.Sampling = &zap.SamplingConfig{
			Initial:    DefaultSamplingInitial,
			Thereafter: DefaultSamplingThereafter,
		}

		if prm.SamplingInitial > 0 {
			c.Sampling.Initial = prm.SamplingInitial
		}

		if prm.SamplingThereafter > 0 {
			c.Sampling.Thereafter = prm.SamplingThereafter
		}
	}

	c.Level = safeLevel(prm.Level)

	switch strings.ToLower(prm.Format) {
	case FormatConsole:
		c.Encoding = FormatConsole
	default:
		c.Encoding = FormatJSON
	}

	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
	if err != nil {
		return nil, err
	}

	if prm.AppName == "" && prm.AppVersion == "" {
		return l, nil
	}

	return l.With(
		zap.String("app_name", prm.AppName),
		zap.String("app_version", prm.AppVersion)), nil
}
