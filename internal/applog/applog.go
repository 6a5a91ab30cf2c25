// Package applog builds the zap logger used by cmd/bnkutil. The bnk
// core package takes no logger of its own (§9 "no ambient state") —
// only the CLI layer logs.
package applog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls logger construction, mirroring the level/format/
// development knobs a CLI tool typically exposes.
type Config struct {
	Level       string // "debug", "info", "warn", "error"; "" uses Development's default
	JSON        bool
	Development bool
}

// DefaultConfig returns a human-readable, development-leaning config
// suitable for running bnkutil interactively.
func DefaultConfig() Config {
	return Config{Development: true}
}

// ProductionConfig returns a structured, info-level config suitable for
// scripted or CI use.
func ProductionConfig() Config {
	return Config{Level: "info", JSON: true}
}

// New builds a zap.Logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Development {
		level = zapcore.DebugLevel
	}
	if cfg.Level != "" {
		if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.JSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...), nil
}
