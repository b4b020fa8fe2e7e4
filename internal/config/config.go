// Package config loads the application settings from a YAML file and the environment
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/myusername/pbp-indicators/pkg/parser"
)

type Config struct {
	Input      InputConfig      `yaml:"input" envPrefix:"INPUT_"`
	Classifier ClassifierConfig `yaml:"classifier" envPrefix:"CLASSIFIER_"`
	Aggregator AggregatorConfig `yaml:"aggregator" envPrefix:"AGGREGATOR_"`
	Batch      BatchConfig      `yaml:"batch" envPrefix:"BATCH_"`
	Output     OutputConfig     `yaml:"output" envPrefix:"OUTPUT_"`
	Server     ServerConfig     `yaml:"server" envPrefix:"SERVER_"`
	Logging    LoggingConfig    `yaml:"logging" envPrefix:"LOG_"`
}

type InputConfig struct {
	Dir        string   `yaml:"dir" env:"DIR"`
	Extensions []string `yaml:"extensions" env:"EXTENSIONS"`
	FetchURL   string   `yaml:"fetch_url" env:"FETCH_URL"` // Index page listing game files to mirror into Dir
}

type ClassifierConfig struct {
	ThreePointDistance int      `yaml:"three_point_distance" env:"THREE_POINT_DISTANCE"`
	TwoPointDistance   int      `yaml:"two_point_distance" env:"TWO_POINT_DISTANCE"`
	EfficientKeywords  []string `yaml:"efficient_keywords" env:"EFFICIENT_KEYWORDS"`
	EfficientThrees    bool     `yaml:"efficient_threes" env:"EFFICIENT_THREES"`
}

type AggregatorConfig struct {
	StrictTeams bool `yaml:"strict_teams" env:"STRICT_TEAMS"` // Reject unmatched team labels instead of counting them as away
}

type BatchConfig struct {
	Workers int `yaml:"workers" env:"WORKERS"`
}

type OutputConfig struct {
	Format  string `yaml:"format" env:"FORMAT"` // "text" or "json"
	CSVPath string `yaml:"csv_path" env:"CSV_PATH"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr" env:"ADDR"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" env:"MAX_BODY_BYTES"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // "text" or "json"
}

// Default returns the settings used when no file or variable overrides them
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir:        ".",
			Extensions: []string{".csv"},
		},
		Classifier: ClassifierConfig{
			ThreePointDistance: parser.DefaultThreePointDistance,
			TwoPointDistance:   parser.DefaultTwoPointDistance,
			EfficientKeywords:  append([]string(nil), parser.DefaultEfficientKeywords...),
			EfficientThrees:    true,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   10 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at configPath over the defaults, then applies PBP_* environment
// variables. An empty path skips the file.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: "PBP_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that would otherwise fail later at run time
func (c *Config) Validate() error {
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	if c.Classifier.ThreePointDistance < 0 || c.Classifier.TwoPointDistance < 0 {
		return fmt.Errorf("classifier distances must not be negative")
	}
	return nil
}

// ClassifierSettings converts the classifier section for the parser package
func (c *Config) ClassifierSettings() parser.ClassifierConfig {
	return parser.ClassifierConfig{
		ThreePointDistance: c.Classifier.ThreePointDistance,
		TwoPointDistance:   c.Classifier.TwoPointDistance,
		EfficientKeywords:  c.Classifier.EfficientKeywords,
		EfficientThrees:    c.Classifier.EfficientThrees,
	}
}
