package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	domainconfig "grapheditor/domain/config"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress   string        `yaml:"server_address"`
	Environment     string        `yaml:"environment"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Lambda configuration
	IsLambda           bool   `yaml:"-"`
	LambdaFunctionName string `yaml:"-"`

	// Sessions
	SessionTTL       time.Duration `yaml:"session_ttl"`
	JanitorInterval  time.Duration `yaml:"janitor_interval"`
	StreamBufferSize int           `yaml:"stream_buffer_size"`

	// Sessions a single client address may start per minute; 0 disables the limit
	SessionCreateLimit int `yaml:"session_create_limit"`

	// Event forwarding; events are only logged when EventBusName is empty
	EventBusName string `yaml:"event_bus_name"`
	AWSRegion    string `yaml:"aws_region"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Feature flags
	EnableMetrics  bool     `yaml:"enable_metrics"`
	EnableCORS     bool     `yaml:"enable_cors"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Editor rules and seed graph
	Domain domainconfig.DomainConfig `yaml:"domain"`

	// Sources the configuration was assembled from, lowest priority first
	LoadedFrom []string `yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *Config {
	return &Config{
		ServerAddress:      ":8080",
		Environment:        "development",
		ShutdownTimeout:    30 * time.Second,
		SessionTTL:         30 * time.Minute,
		JanitorInterval:    time.Minute,
		StreamBufferSize:   16,
		SessionCreateLimit: 30,
		AWSRegion:          "us-east-1",
		LogLevel:           "info",
		EnableMetrics:      true,
		EnableCORS:         true,
		AllowedOrigins:     []string{"*"},
		Domain:             *domainconfig.DefaultDomainConfig(),
	}
}

// LoadConfig assembles configuration in this order, later sources winning:
// built-in defaults, the YAML file named by CONFIG_FILE, environment variables.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	cfg.LoadedFrom = append(cfg.LoadedFrom, "defaults")

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	if err := cfg.loadEnvironmentVariables(); err != nil {
		return nil, err
	}
	cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// loadFile overlays a YAML file on the configuration
func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentVariables overlays environment variables on the configuration
func (c *Config) loadEnvironmentVariables() error {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.EventBusName = getEnv("EVENT_BUS_NAME", c.EventBusName)
	c.AWSRegion = getEnv("AWS_REGION", c.AWSRegion)
	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}

	c.LambdaFunctionName = getEnv("AWS_LAMBDA_FUNCTION_NAME", "")
	c.IsLambda = getEnvBool("IS_LAMBDA", c.LambdaFunctionName != "")

	var err error
	if c.SessionTTL, err = getEnvDuration("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}
	if c.SessionCreateLimit, err = getEnvInt("SESSION_CREATE_LIMIT", c.SessionCreateLimit); err != nil {
		return err
	}
	if c.Domain.MaxNodesPerGraph, err = getEnvInt("MAX_NODES", c.Domain.MaxNodesPerGraph); err != nil {
		return err
	}
	if c.Domain.MaxEdgesPerGraph, err = getEnvInt("MAX_EDGES", c.Domain.MaxEdgesPerGraph); err != nil {
		return err
	}
	return nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if c.ServerAddress == "" && !c.IsLambda {
		return fmt.Errorf("SERVER_ADDRESS is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.StreamBufferSize <= 0 {
		return fmt.Errorf("stream buffer size must be positive")
	}
	if c.SessionCreateLimit < 0 {
		return fmt.Errorf("SESSION_CREATE_LIMIT must not be negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
	if err := c.Domain.Validate(); err != nil {
		return fmt.Errorf("invalid domain config: %w", err)
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return intVal, nil
}

// getEnvDuration gets a duration environment variable such as "30m"
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
