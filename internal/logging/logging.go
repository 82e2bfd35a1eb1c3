// Package logging builds the zap loggers used by the engine and the CLI.
package logging

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging.
const (
	FieldType     = "type"
	FieldMethod   = "method"
	FieldRole     = "role"
	FieldProperty = "property"
	FieldConstant = "constant"
	FieldCount    = "count"
	FieldCached   = "cached"
	FieldFile     = "file"
	FieldError    = "error"
)

// Options controls logger construction.
type Options struct {
	JSON  bool
	Level string
}

// New builds a logger. JSON output uses the zap production config; otherwise
// a console encoder writes to stderr so command output stays clean.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if opts.JSON {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)

		return cfg.Build()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stderr),
		level,
	)

	return zap.New(core), nil
}

// ParseLevel converts a level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel, errors.WithHint(
			errors.Wrapf(err, "invalid log level %q", s),
			"use one of debug, info, warn, error",
		)
	}

	return level, nil
}
