package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for NetCoach
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Probe      ProbeConfig      `mapstructure:"probe"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LLMConfig holds completion provider configuration.
// The API key itself is supplied per request by the caller; only the
// endpoint and model names are server-side settings.
type LLMConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Model      string `mapstructure:"model"`
	TitleModel string `mapstructure:"title_model"`
}

// ModerationConfig holds moderation configuration. An empty APIKey
// disables moderation (fail-open for local use).
type ModerationConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// ProbeConfig holds timeouts for the diagnostic tools
type ProbeConfig struct {
	DNSTimeout  time.Duration `mapstructure:"dns_timeout"`
	TCPTimeout  time.Duration `mapstructure:"tcp_timeout"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("NETCOACH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allow_origins", []string{"*"})

	v.SetDefault("database.path", "./data/netcoach.db")

	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4.1-mini")
	v.SetDefault("llm.title_model", "gpt-4o-mini")

	v.SetDefault("moderation.api_key", "")
	v.SetDefault("moderation.model", "omni-moderation-latest")

	v.SetDefault("probe.dns_timeout", 2*time.Second)
	v.SetDefault("probe.tcp_timeout", 2*time.Second)
	v.SetDefault("probe.http_timeout", 3*time.Second)
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
