package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8000"
	defaultLogLevel      = "warn"
	defaultEnv           = "local"
	defaultConfigDir     = ".safetrip"
	defaultTimeout       = 90 * time.Second
)

type Config struct {
	Env           string
	ServerAddress string
	LogLevel      string
	ConfigDir     string
	SessionPath   string
	CachePath     string
	EnableTLS     bool
	Timeout       time.Duration
}

// Load reads .env, an optional config file and SAFETRIP_* variables.
// configFile overrides the default ~/.safetrip/config.yaml lookup.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("safetrip")
	v.AutomaticEnv()

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("config_dir", "")
	v.SetDefault("enable_tls", false)
	v.SetDefault("timeout", defaultTimeout)

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(filepath.Join(home, defaultConfigDir))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	configDir := v.GetString("config_dir")
	if configDir == "" {
		configDir = filepath.Join(home, defaultConfigDir)
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	cfg := &Config{
		Env:           v.GetString("app_env"),
		ServerAddress: v.GetString("server_address"),
		LogLevel:      v.GetString("log_level"),
		ConfigDir:     configDir,
		SessionPath:   filepath.Join(configDir, "session.json"),
		CachePath:     filepath.Join(configDir, "offline.db"),
		EnableTLS:     v.GetBool("enable_tls"),
		Timeout:       v.GetDuration("timeout"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return errors.New("server_address must not be empty")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

// BaseURL is the server root, e.g. http://localhost:8000.
func (c *Config) BaseURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
