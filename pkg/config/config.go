package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration. User preferences (api key,
// topics, schedule time) live in the database and are editable at runtime;
// this covers only the process-level setup.
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:morning-brief.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		PollInterval   time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=10s,description=How often the scheduler checks the wall clock"`
		CompletedReset time.Duration `yaml:"completed_reset" json:"completed_reset" jsonschema:"default=3s,description=How long the completed status is shown before reverting to idle"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Generation GenerationConfig `yaml:"generation" json:"generation" jsonschema:"description=Generation provider configuration"`

	Export struct {
		Dir string `yaml:"dir" json:"dir" jsonschema:"default=briefings,description=Directory for exported markdown files"`
	} `yaml:"export" json:"export" jsonschema:"description=Markdown export configuration"`
}

// GenerationConfig holds provider-level generation settings. The api key and
// model are user settings and come from the database, not from here.
type GenerationConfig struct {
	Provider    string        `yaml:"provider" json:"provider" jsonschema:"default=gemini,description=Generation provider: gemini or openai"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint, used by the openai provider only"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=Generation request timeout"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=4096,description=Maximum tokens in response"`
}

// provider names
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:morning-brief.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if c.Schedule.PollInterval == 0 {
		c.Schedule.PollInterval = 10 * time.Second
	}
	if c.Schedule.CompletedReset == 0 {
		c.Schedule.CompletedReset = 3 * time.Second
	}

	// set defaults for generation
	if c.Generation.Provider == "" {
		c.Generation.Provider = ProviderGemini
	}
	if c.Generation.Timeout == 0 {
		c.Generation.Timeout = 120 * time.Second
	}
	if c.Generation.Temperature == 0 {
		c.Generation.Temperature = 0.3
	}
	if c.Generation.MaxTokens == 0 {
		c.Generation.MaxTokens = 4096
	}

	// set defaults for export
	if c.Export.Dir == "" {
		c.Export.Dir = "briefings"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate generation config
	switch cfg.Generation.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("generation.provider must be gemini or openai, got %q", cfg.Generation.Provider)
	}
	if cfg.Generation.Provider == ProviderOpenAI && cfg.Generation.Endpoint == "" {
		return fmt.Errorf("generation.endpoint is required for the openai provider")
	}
	if cfg.Generation.Temperature < 0 || cfg.Generation.Temperature > 2 {
		return fmt.Errorf("generation.temperature must be between 0 and 2")
	}

	// validate schedule config, the poll interval must fit inside the
	// one-minute trigger window or a scheduled run can be skipped
	if cfg.Schedule.PollInterval < time.Second {
		return fmt.Errorf("schedule.poll_interval must be at least 1 second")
	}
	if cfg.Schedule.PollInterval > time.Minute {
		return fmt.Errorf("schedule.poll_interval must not exceed 1 minute")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetGenerationConfig returns generation provider configuration
func (c *Config) GetGenerationConfig() GenerationConfig {
	return c.Generation
}
