package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// PipelineConfig holds the named constants of the normalization pipeline.
// Defaults mirror the quarterly export corpus: reporting years 2024/2025,
// Polish "ogółem" (overall) as the categorical sentinel.
type PipelineConfig struct {
	InputDir   string `yaml:"input_dir" envconfig:"INPUT_DIR"`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE"`

	DefaultYear      string `yaml:"default_year" envconfig:"DEFAULT_YEAR"`
	AllowedYears     []int  `yaml:"allowed_years" envconfig:"ALLOWED_YEARS"`
	CategorySentinel string `yaml:"category_sentinel" envconfig:"CATEGORY_SENTINEL"`
	RegionSentinel   string `yaml:"region_sentinel" envconfig:"REGION_SENTINEL"`
	NoDataText       string `yaml:"no_data_text" envconfig:"NO_DATA_TEXT"`

	// Encodings is the ordered decode fallback list; the first encoding
	// that decodes a file wins and later ones are never tried.
	Encodings []string `yaml:"encodings" envconfig:"ENCODINGS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the configuration with every field at its default value.
// Tests use it as a baseline and override individual fields.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			InputDir:         "data/input",
			OutputFile:       "data/output/normalized.csv",
			DefaultYear:      "2025",
			AllowedYears:     []int{2024, 2025},
			CategorySentinel: "ogółem",
			RegionSentinel:   "ogółem",
			NoDataText:       "brak danych",
			Encodings:        []string{"utf-8", "windows-1250", "iso-8859-2"},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/kwartal.log",
		},
	}
}

// Load builds the configuration in three layers: built-in defaults, an
// optional YAML file, then KWARTAL_* environment variables. Later layers
// override earlier ones field by field.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process("KWARTAL", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Pipeline.InputDir == "" {
		return fmt.Errorf("pipeline.input_dir must not be empty")
	}
	if c.Pipeline.OutputFile == "" {
		return fmt.Errorf("pipeline.output_file must not be empty")
	}
	if c.Pipeline.DefaultYear == "" {
		return fmt.Errorf("pipeline.default_year must not be empty")
	}
	if len(c.Pipeline.AllowedYears) == 0 {
		return fmt.Errorf("pipeline.allowed_years must not be empty")
	}
	if len(c.Pipeline.Encodings) == 0 {
		return fmt.Errorf("pipeline.encodings must not be empty")
	}
	for _, enc := range c.Pipeline.Encodings {
		if !supportedEncoding(enc) {
			return fmt.Errorf("unsupported encoding %q", enc)
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	return nil
}

func supportedEncoding(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "windows-1250", "iso-8859-2", "windows-1252", "iso-8859-1":
		return true
	}
	return false
}

// YearAllowed reports whether year is one of the configured reporting years.
func (p PipelineConfig) YearAllowed(year int) bool {
	for _, y := range p.AllowedYears {
		if y == year {
			return true
		}
	}
	return false
}
