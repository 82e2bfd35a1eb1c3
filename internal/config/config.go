package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"accessor-naming/internal/enummap"
	"accessor-naming/internal/logging"
	"accessor-naming/internal/match"
	"accessor-naming/internal/plan"
)

// EnvPrefix is prepended to every environment variable, e.g.
// ACCESSOR_NAMING_ENUM_DEFAULT_POSTFIX.
const EnvPrefix = "ACCESSOR_NAMING"

// Configuration keys.
const (
	KeyDefaultPostfix   = "enum.default_postfix"
	KeyPostfixOverrides = "enum.postfix_overrides"
	KeyWireOnly         = "enum.wire_only"
	KeyImportPaths      = "proto.import_paths"
	KeyLogJSON          = "log.json"
	KeyLogLevel         = "log.level"
	KeyConcurrency      = "batch.concurrency"
	KeyMinConfidence    = "pair.min_confidence"
	KeyMinGap           = "pair.min_gap"

	// KeyLegacyOverrides is the annotation-processor option name for the
	// override table. It is read when KeyPostfixOverrides is empty.
	KeyLegacyOverrides = "mapstruct.protobuf.enumPostfixOverrides"
)

// Config holds generator options.
type Config struct {
	Enum  EnumConfig  `mapstructure:"enum"`
	Proto ProtoConfig `mapstructure:"proto"`
	Log   LogConfig   `mapstructure:"log"`
	Batch BatchConfig `mapstructure:"batch"`
	Pair  PairConfig  `mapstructure:"pair"`
}

// EnumConfig configures the absent-value convention.
type EnumConfig struct {
	DefaultPostfix   string `mapstructure:"default_postfix"`
	PostfixOverrides string `mapstructure:"postfix_overrides"` // prefix=POSTFIX,...
	WireOnly         bool   `mapstructure:"wire_only"`
}

// ProtoConfig configures .proto parsing.
type ProtoConfig struct {
	ImportPaths []string `mapstructure:"import_paths"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// BatchConfig configures batch classification.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// PairConfig configures property pairing thresholds.
type PairConfig struct {
	MinConfidence float64 `mapstructure:"min_confidence"`
	MinGap        float64 `mapstructure:"min_gap"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDefaultPostfix, enummap.DefaultPostfix)
	v.SetDefault(KeyPostfixOverrides, "")
	v.SetDefault(KeyWireOnly, false)
	v.SetDefault(KeyImportPaths, []string{})
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyConcurrency, 4)
	v.SetDefault(KeyMinConfidence, match.DefaultMinScore)
	v.SetDefault(KeyMinGap, match.DefaultMinGap)
}

// New returns a viper instance with defaults and environment binding but no
// config file.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// Load reads the config file at path (YAML, TOML or JSON by extension) on top
// of the defaults; environment variables take precedence over both. An empty
// path skips the file.
func Load(path string) (*Config, error) {
	v := New()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper decodes and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	if v.GetString(KeyPostfixOverrides) == "" && v.IsSet(KeyLegacyOverrides) {
		v.Set(KeyPostfixOverrides, v.GetString(KeyLegacyOverrides))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges and parses the override table and log level.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Enum.DefaultPostfix) == "" {
		return errors.WithHint(errors.Newf("%s must not be empty", KeyDefaultPostfix),
			"the protobuf style guide uses "+enummap.DefaultPostfix)
	}

	if _, err := enummap.ParseOverrides(c.Enum.PostfixOverrides); err != nil {
		return errors.Wrapf(err, "invalid %s", KeyPostfixOverrides)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Batch.Concurrency < 1 {
		return errors.Newf("%s must be positive, got %d", KeyConcurrency, c.Batch.Concurrency)
	}

	if c.Pair.MinConfidence < 0 || c.Pair.MinConfidence > 1 {
		return errors.Newf("%s must be within [0, 1], got %v", KeyMinConfidence, c.Pair.MinConfidence)
	}

	if c.Pair.MinGap < 0 || c.Pair.MinGap > 1 {
		return errors.Newf("%s must be within [0, 1], got %v", KeyMinGap, c.Pair.MinGap)
	}

	return nil
}

// MapperConfig returns the enum mapper configuration.
func (c *Config) MapperConfig() (enummap.Config, error) {
	overrides, err := enummap.ParseOverrides(c.Enum.PostfixOverrides)
	if err != nil {
		return enummap.Config{}, err
	}

	return enummap.Config{DefaultPostfix: c.Enum.DefaultPostfix, Overrides: overrides}, nil
}

// MapperOptions returns the enum mapper options implied by the configuration.
func (c *Config) MapperOptions() []enummap.Option {
	if c.Enum.WireOnly {
		return []enummap.Option{enummap.WithWireEnumsOnly()}
	}

	return nil
}

// PairerConfig returns the pairing configuration.
func (c *Config) PairerConfig() plan.Config {
	cfg := plan.DefaultConfig()
	cfg.MinConfidence = c.Pair.MinConfidence
	cfg.MinGap = c.Pair.MinGap

	return cfg
}

// LoggingOptions returns the logger options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{JSON: c.Log.JSON, Level: c.Log.Level}
}
