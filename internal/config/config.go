// Package config loads the settings of the socialplot command from a
// YAML file and SOCIALPLOT_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Prefix of all environment variables.
const Prefix = "SOCIALPLOT"

// Config is the complete configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Render  RenderConfig  `yaml:"render" envconfig:"RENDER"`

	// Charts can only be given in the file.
	Charts []ChartConfig `yaml:"charts" ignored:"true" validate:"dive"`
}

// LoggingConfig controls the slog logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"omitempty,oneof=stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output stderr"`
}

// RenderConfig controls how charts are written.
type RenderConfig struct {
	// Format overrides the format derived from the output file name.
	Format string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=svg vgsvg png pdf"`

	// Concurrency bounds the number of charts rendered at once.
	Concurrency int `yaml:"concurrency" envconfig:"CONCURRENCY" validate:"gte=0,lte=64"`

	FailFast bool `yaml:"fail_fast" envconfig:"FAIL_FAST"`
}

// ChartConfig describes one chart of a batch.
type ChartConfig struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind" validate:"required,oneof=box bar line"`
	Source string `yaml:"source" validate:"required"`
	Output string `yaml:"output" validate:"required"`
	Format string `yaml:"format" validate:"omitempty,oneof=svg vgsvg png pdf"`

	OnInvalid string `yaml:"on_invalid" validate:"omitempty,oneof=fail drop"`

	Title      string  `yaml:"title"`
	Width      float64 `yaml:"width" validate:"gte=0"`
	Height     float64 `yaml:"height" validate:"gte=0"`
	Background *string `yaml:"background"`

	// Line charts only.
	Curve    string    `yaml:"curve" validate:"omitempty,oneof=linear natural"`
	LineType string    `yaml:"line_type" validate:"omitempty,oneof=solid dashed dotted"`
	Marker   string    `yaml:"marker" validate:"omitempty,oneof=circle square solid-circle solid-square"`
	YDomain  []float64 `yaml:"y_domain" validate:"omitempty,len=2"`
}

// Default returns the built in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Render: RenderConfig{
			Concurrency: 4,
		},
	}
}

// Load reads path (if not empty), applies the environment on top and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(cfg, fileCfg)
	}

	var envCfg Config
	if err := envconfig.Process(Prefix, &envCfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	cfg = merge(cfg, &envCfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge returns base with every non zero setting of over applied.
func merge(base, over *Config) *Config {
	r := *base
	setString(&r.Logging.Level, over.Logging.Level)
	setString(&r.Logging.Format, over.Logging.Format)
	setString(&r.Logging.Output, over.Logging.Output)
	setString(&r.Logging.FilePath, over.Logging.FilePath)
	setString(&r.Render.Format, over.Render.Format)
	if over.Render.Concurrency != 0 {
		r.Render.Concurrency = over.Render.Concurrency
	}
	r.Render.FailFast = r.Render.FailFast || over.Render.FailFast
	if len(over.Charts) > 0 {
		r.Charts = append([]ChartConfig(nil), over.Charts...)
	}
	return &r
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

var validate = validator.New()

// Validate checks all settings.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// ValidateChart checks a single chart description.
func ValidateChart(cc ChartConfig) error {
	return validate.Struct(cc)
}
