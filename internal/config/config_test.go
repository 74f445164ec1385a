package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, ":8000", cfg.Server.RunAddress)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 4096, cfg.AI.MaxTokens)
	assert.Equal(t, 5, cfg.News.MaxItems)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Kafka.PublishTimeout)
	assert.False(t, cfg.IsProd())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("app_env", EnvProd)
	v.Set("kafka_brokers", "k1:9092, k2:9092,")
	v.Set("session_ttl", "2h")
	v.Set("smtp_port", 2525)

	cfg := fromViper(v)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 2525, cfg.Mail.Port)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "a", want: []string{"a"}},
		{name: "spaces and blanks", raw: " a , ,b ", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.raw))
		})
	}
}
