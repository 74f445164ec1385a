package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultAIEndpoint = "https://lexiai1.openai.azure.com/openai/deployments/lexiaiapi/chat/completions?api-version=2024-08-01-preview"
	defaultGeocoder   = "https://api.opencagedata.com/geocode/v1/json"
	defaultNewsFeed   = "https://news.google.com/rss/search"
)

// Config is read once at startup and handed to constructors. Nothing mutates it afterwards.
type Config struct {
	Env       string
	DB        db
	Server    server
	Logger    logger
	Session   session
	AI        ai
	Geocoder  geocoder
	News      news
	Mail      mail
	Kafka     kafka
	RateLimit rateLimit
	CORS      cors
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type session struct {
	TTL time.Duration `env:"SESSION_TTL"`
}

type ai struct {
	Endpoint  string        `env:"AI_ENDPOINT"`
	APIKey    string        `env:"AI_API_KEY"`
	MaxTokens int           `env:"AI_MAX_TOKENS"`
	Timeout   time.Duration `env:"AI_TIMEOUT"`
}

type geocoder struct {
	Endpoint string        `env:"GEOCODER_ENDPOINT"`
	APIKey   string        `env:"GEOCODER_API_KEY"`
	Timeout  time.Duration `env:"GEOCODER_TIMEOUT"`
}

type news struct {
	FeedURL  string        `env:"NEWS_FEED_URL"`
	Region   string        `env:"NEWS_REGION"`
	MaxItems int           `env:"NEWS_MAX_ITEMS"`
	Timeout  time.Duration `env:"NEWS_TIMEOUT"`
}

type mail struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"DEFAULT_FROM_EMAIL"`
	FromName string `env:"SMTP_FROM_NAME"`
	UseTLS   bool   `env:"SMTP_USE_TLS"`
}

type kafka struct {
	Brokers        []string      `env:"KAFKA_BROKERS"`
	Topic          string        `env:"KAFKA_TOPIC"`
	PublishTimeout time.Duration `env:"KAFKA_PUBLISH_TIMEOUT"`
}

type rateLimit struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW"`
}

type cors struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
}

// MustLoad reads .env (when present) and the process environment.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		log.Println("failed to read .env file, relying on environment variables:", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":8000")
	v.SetDefault("read_timeout", 15*time.Second)
	v.SetDefault("write_timeout", 90*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("session_ttl", 24*time.Hour)

	v.SetDefault("ai_endpoint", defaultAIEndpoint)
	v.SetDefault("ai_max_tokens", 4096)
	v.SetDefault("ai_timeout", 60*time.Second)

	v.SetDefault("geocoder_endpoint", defaultGeocoder)
	v.SetDefault("geocoder_timeout", 10*time.Second)

	v.SetDefault("news_feed_url", defaultNewsFeed)
	v.SetDefault("news_region", "India")
	v.SetDefault("news_max_items", 5)
	v.SetDefault("news_timeout", 10*time.Second)

	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_from_name", "SafeTrip SOS")
	v.SetDefault("smtp_use_tls", true)

	v.SetDefault("kafka_topic", "safetrip.events")
	v.SetDefault("kafka_publish_timeout", 2*time.Second)

	v.SetDefault("rate_limit_requests", 120)
	v.SetDefault("rate_limit_window", time.Minute)
	v.SetDefault("cors_allowed_origins", "*")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Env: v.GetString("app_env"),
		DB: db{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: server{
			RunAddress:      v.GetString("run_address"),
			ReadTimeout:     v.GetDuration("read_timeout"),
			WriteTimeout:    v.GetDuration("write_timeout"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Logger:  logger{LogLevel: v.GetString("log_level")},
		Session: session{TTL: v.GetDuration("session_ttl")},
		AI: ai{
			Endpoint:  v.GetString("ai_endpoint"),
			APIKey:    v.GetString("ai_api_key"),
			MaxTokens: v.GetInt("ai_max_tokens"),
			Timeout:   v.GetDuration("ai_timeout"),
		},
		Geocoder: geocoder{
			Endpoint: v.GetString("geocoder_endpoint"),
			APIKey:   v.GetString("geocoder_api_key"),
			Timeout:  v.GetDuration("geocoder_timeout"),
		},
		News: news{
			FeedURL:  v.GetString("news_feed_url"),
			Region:   v.GetString("news_region"),
			MaxItems: v.GetInt("news_max_items"),
			Timeout:  v.GetDuration("news_timeout"),
		},
		Mail: mail{
			Host:     v.GetString("smtp_host"),
			Port:     v.GetInt("smtp_port"),
			User:     v.GetString("smtp_user"),
			Password: v.GetString("smtp_password"),
			From:     v.GetString("default_from_email"),
			FromName: v.GetString("smtp_from_name"),
			UseTLS:   v.GetBool("smtp_use_tls"),
		},
		Kafka: kafka{
			Brokers:        splitList(v.GetString("kafka_brokers")),
			Topic:          v.GetString("kafka_topic"),
			PublishTimeout: v.GetDuration("kafka_publish_timeout"),
		},
		RateLimit: rateLimit{
			Requests: v.GetInt("rate_limit_requests"),
			Window:   v.GetDuration("rate_limit_window"),
		},
		CORS: cors{AllowedOrigins: splitList(v.GetString("cors_allowed_origins"))},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProd reports whether the service runs in production.
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}
