// Package logging provides standardized logging utilities for wrap-pkg-config.
package logging

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config represents logging configuration
type Config struct {
	Level   string
	DevMode bool
}

// NewLogger creates a new configured logger. Output always goes to stderr,
// stdout carries the probe result only.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level := cfg.Level
	if level == "" {
		level = "warn"
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %v", err)
	}

	var config zap.Config
	if cfg.DevMode {
		config = zap.NewDevelopmentConfig()
	} else {
		// For a shim called from build scripts we stay quiet unless asked
		config = zap.NewProductionConfig()
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			config.Encoding = "console"
			config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		}
	}

	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	config.DisableStacktrace = true

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %v", err)
	}

	return logger, nil
}

// Common field keys
const (
	FieldKeyTool      = "tool"
	FieldKeyArgs      = "args"
	FieldKeyStatus    = "status"
	FieldKeyResult    = "result"
	FieldKeyPlatform  = "platform"
	FieldKeyComponent = "component"
)

// Component names for logging
const (
	ComponentCLI     = "cli"
	ComponentInvoker = "invoker"
)

// ProbeFields returns the fields describing a single tool invocation.
func ProbeFields(tool string, args []string, platform string) []zap.Field {
	return []zap.Field{
		zap.String(FieldKeyTool, tool),
		zap.Strings(FieldKeyArgs, args),
		zap.String(FieldKeyPlatform, platform),
	}
}

// LogProbeResult logs the outcome of a probe, or the reason it failed. A
// failure is logged at debug level, the caller reports it to the user.
func LogProbeResult(logger *zap.Logger, tool string, status, result int, err error) {
	if err != nil {
		logger.Debug("Probe failed",
			zap.String(FieldKeyTool, tool),
			zap.Error(err))
		return
	}

	logger.Debug("Probe completed",
		zap.String(FieldKeyTool, tool),
		zap.Int(FieldKeyStatus, status),
		zap.Int(FieldKeyResult, result))
}
