package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values
const (
	DefaultConfigPath = "config.yaml"
	DefaultModel      = "gpt-3.5-turbo"
	DefaultEndpoint   = "https://api.openai.com/v1"

	DefaultGeminiModel = "gemini-2.0-flash"
)

// LLMConfig holds configuration for the completion provider
type LLMConfig struct {
	Provider      string        `yaml:"provider"`        // openai, gemini, langchain (default: openai)
	Model         string        `yaml:"model"`           // Model identifier sent with every request
	Endpoint      string        `yaml:"endpoint"`        // Base URL; empty selects the Gemini SDK default
	APIKey        string        `yaml:"api_key"`         // From YAML or Env
	Timeout       time.Duration `yaml:"timeout"`         // 0 disables the per-request timeout
	VerifyOnStart bool          `yaml:"verify_on_start"` // Send a one-token request at startup
	ExtraBody     string        `yaml:"extra_body"`      // JSON object merged into each request body
}

// WindowConfig holds configuration for the calculator window
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Config holds the configuration for the calculator
type Config struct {
	Log struct {
		Level    string `yaml:"level"`  // DEBUG, INFO, WARN, ERROR
		Format   string `yaml:"format"` // text, json
		Output   string `yaml:"output"` // stdout, stderr, /path/to/file
		Rotation struct {
			MaxSize    int  `yaml:"max_size"`    // Megabytes
			MaxBackups int  `yaml:"max_backups"` // Number of old files to keep
			MaxAge     int  `yaml:"max_age"`     // Days to keep
			Compress   bool `yaml:"compress"`
		} `yaml:"rotation"`
	} `yaml:"log"`

	LLM LLMConfig `yaml:"llm"`

	Window WindowConfig `yaml:"window"`

	Metrics struct {
		Listen string `yaml:"listen"` // e.g. 127.0.0.1:9464, empty disables /metrics
	} `yaml:"metrics"`
}

// GetLogLevel returns the slog.Level based on Log.Level string
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToUpper(c.Log.Level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig loads configuration from YAML file and supplements with environment variables.
// A malformed or unreadable config file is returned as an error; a missing one is not.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	cfg.Log.Level = "INFO"
	cfg.Log.Format = "text"
	cfg.Log.Output = "stderr"
	cfg.Log.Rotation.MaxSize = 10
	cfg.Log.Rotation.MaxBackups = 3
	cfg.Log.Rotation.MaxAge = 7
	cfg.Log.Rotation.Compress = true

	cfg.LLM.Provider = ProviderOpenAI
	cfg.LLM.Model = DefaultModel
	cfg.LLM.Endpoint = DefaultEndpoint

	cfg.Window.Title = WindowTitle
	cfg.Window.Width = 400
	cfg.Window.Height = 500

	configPath := getEnv("CONFIG_PATH", DefaultConfigPath)
	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config %s: %w", configPath, err)
		}
		slog.Debug("config loaded", "path", configPath)
	} else {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
		slog.Debug("config not found, using defaults", "path", configPath)
	}

	// The OpenAI SDK convention is honoured as a fallback for the key.
	cfg.LLM.APIKey = firstNonEmpty(os.Getenv("LLM_API_KEY"), os.Getenv("OPENAI_API_KEY"), cfg.LLM.APIKey)
	cfg.LLM.Provider = strings.ToLower(getEnv("LLM_PROVIDER", cfg.LLM.Provider))
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.Endpoint = getEnv("LLM_ENDPOINT", cfg.LLM.Endpoint)
	if d := getEnvDuration("LLM_TIMEOUT", 0); d != 0 {
		cfg.LLM.Timeout = d
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.Log.Level = envLogLevel
	}
	if envLogFormat := os.Getenv("LOG_FORMAT"); envLogFormat != "" {
		cfg.Log.Format = envLogFormat
	}
	if envLogOutput := getEnv("LOG_OUTPUT", ""); envLogOutput != "" {
		cfg.Log.Output = envLogOutput
	}
	if envLogMaxSize := getEnvInt("LOG_MAX_SIZE", 0); envLogMaxSize != 0 {
		cfg.Log.Rotation.MaxSize = envLogMaxSize
	}

	cfg.Metrics.Listen = getEnv("METRICS_LISTEN", cfg.Metrics.Listen)

	cfg.applyProviderDefaults()

	return cfg, nil
}

// applyProviderDefaults replaces OpenAI defaults that were never overridden
// with the selected provider's own.
func (c *Config) applyProviderDefaults() {
	if c.LLM.Provider != ProviderGemini {
		return
	}
	if c.LLM.Model == DefaultModel {
		c.LLM.Model = DefaultGeminiModel
	}
	if c.LLM.Endpoint == DefaultEndpoint {
		c.LLM.Endpoint = ""
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []string

	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderLangChain:
	default:
		errs = append(errs, fmt.Sprintf("unknown llm provider: %q", c.LLM.Provider))
	}

	if c.LLM.APIKey == "" {
		errs = append(errs, "LLM_API_KEY is required")
	}

	if c.LLM.Model == "" {
		errs = append(errs, "llm model is required")
	}

	if c.LLM.Provider == ProviderGemini {
		if strings.HasPrefix(c.LLM.Model, "gpt-") {
			errs = append(errs, fmt.Sprintf("model %q is not a gemini model", c.LLM.Model))
		}
		if strings.Contains(c.LLM.Endpoint, "api.openai.com") {
			errs = append(errs, fmt.Sprintf("endpoint %q is not a gemini endpoint", c.LLM.Endpoint))
		}
	}

	if c.LLM.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("invalid llm timeout: %v", c.LLM.Timeout))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Sprintf("invalid window size: %vx%v", c.Window.Width, c.Window.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}
