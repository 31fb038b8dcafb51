package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"arkive-client/internal/model"
)

// Config holds all client configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Backend - RAG API the client talks to
	Backend  BackendConfig
	Timeouts TimeoutsConfig

	// User - the single owner this client acts for
	User UserConfig
	Chat ChatConfig

	// Compliance - pillar catalogue
	Compliance ComplianceConfig

	// Kafka - Activity events (optional)
	Kafka KafkaConfig

	// Cache - library views
	Cache CacheConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the local view-model server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	// FilePath enables a rotating JSON log file when set.
	FilePath string
}

// BackendConfig is the configuration for the RAG backend client
type BackendConfig struct {
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// TimeoutsConfig bounds each call class.
type TimeoutsConfig struct {
	Chat       time.Duration
	Upload     time.Duration
	Sessions   time.Duration
	Compliance time.Duration
}

// UserConfig identifies the owner of every request.
type UserConfig struct {
	Name string
}

// ChatConfig is the configuration for the conversation view
type ChatConfig struct {
	WelcomeMessage string
}

// ComplianceConfig is the configuration for the compliance workflow
type ComplianceConfig struct {
	// CataloguePath overrides the embedded pillar catalogue.
	CataloguePath string
}

// KafkaConfig is the configuration for Kafka. Events are disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// Enabled reports whether activity events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// CacheConfig is the configuration for the in-process view caches
type CacheConfig struct {
	TTL time.Duration
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// Set config file name and paths
	v.SetConfigName("arkive-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/arkive/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")

	// Backend
	cfg.Backend.BaseURL = v.GetString("backend.base_url")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	cfg.Backend.Retries = v.GetInt("backend.retries")
	cfg.Backend.RetryWait = v.GetDuration("backend.retry_wait")

	// Timeouts
	cfg.Timeouts.Chat = v.GetDuration("timeouts.chat")
	cfg.Timeouts.Upload = v.GetDuration("timeouts.upload")
	cfg.Timeouts.Sessions = v.GetDuration("timeouts.sessions")
	cfg.Timeouts.Compliance = v.GetDuration("timeouts.compliance")

	// User & Chat
	cfg.User.Name = v.GetString("user.name")
	cfg.Chat.WelcomeMessage = v.GetString("chat.welcome_message")

	// Compliance
	cfg.Compliance.CataloguePath = v.GetString("compliance.catalogue_path")

	// Kafka - Event publishing (optional)
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")
	cfg.Kafka.ClientID = v.GetString("kafka.client_id")

	// Cache
	cfg.Cache.TTL = v.GetDuration("cache.ttl")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "development")

	// HTTP Server
	v.SetDefault("http_server.host", "127.0.0.1")
	v.SetDefault("http_server.port", 8090)
	v.SetDefault("http_server.mode", "debug")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.file_path", "")

	// Backend
	v.SetDefault("backend.base_url", "http://127.0.0.1:8000")
	v.SetDefault("backend.timeout", "180s")
	v.SetDefault("backend.retries", 1)
	v.SetDefault("backend.retry_wait", "500ms")

	// Timeouts
	v.SetDefault("timeouts.chat", "60s")
	v.SetDefault("timeouts.upload", "120s")
	v.SetDefault("timeouts.sessions", "15s")
	v.SetDefault("timeouts.compliance", "180s")

	// Chat
	v.SetDefault("chat.welcome_message", "Hi! I'm Arkive AI. Upload a document and ask me anything about it!")

	// Kafka
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "arkive.client.activity")
	v.SetDefault("kafka.client_id", "arkive-client")

	// Cache
	v.SetDefault("cache.ttl", "30s")
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url must be an absolute URL, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Retries < 0 {
		return fmt.Errorf("backend.retries must be >= 0")
	}

	for name, d := range map[string]time.Duration{
		"timeouts.chat":       cfg.Timeouts.Chat,
		"timeouts.upload":     cfg.Timeouts.Upload,
		"timeouts.sessions":   cfg.Timeouts.Sessions,
		"timeouts.compliance": cfg.Timeouts.Compliance,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	// The owner is optional here; the CLI asks for it when missing.
	if cfg.User.Name != "" {
		name, err := model.NormalizeUsername(cfg.User.Name)
		if err != nil {
			return fmt.Errorf("user.name: %w", err)
		}
		cfg.User.Name = name
	}

	if cfg.Kafka.Enabled() && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}
	return nil
}
