package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret signs tokens when JWT_SECRET is unset.
const DefaultJWTSecret = "change-me"

// Config is the runtime configuration of the server.
type Config struct {
	AppPort          string
	JWTSecret        string
	SessionTTL       time.Duration
	RabbitMQURL      string
	RabbitMQExchange string
	GeminiAPIKey     string
	GeminiModel      string
	GeminiBaseURL    string
	ConfirmTTL       time.Duration
	PublicEntry      string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("SESSION_TTL", "24h")
	// Empty disables change-event publishing.
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "arabyprompts.store")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("CONFIRM_TTL", "5m")
	v.SetDefault("PUBLIC_ENTRY", "/")
}

// Load reads the configuration from v, falling back to defaults for unset keys
// and for durations that do not parse.
func Load(v *viper.Viper) Config {
	SetDefaults(v)
	v.AutomaticEnv()

	return Config{
		AppPort:          v.GetString("APP_PORT"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		SessionTTL:       durationOr(v, "SESSION_TTL", 24*time.Hour),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		GeminiAPIKey:     v.GetString("GEMINI_API_KEY"),
		GeminiModel:      v.GetString("GEMINI_MODEL"),
		GeminiBaseURL:    v.GetString("GEMINI_BASE_URL"),
		ConfirmTTL:       durationOr(v, "CONFIRM_TTL", 5*time.Minute),
		PublicEntry:      v.GetString("PUBLIC_ENTRY"),
	}
}

// UsesDefaultJWTSecret reports whether tokens are signed with the built-in
// secret, which anyone can use to forge a session.
func (c Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d := v.GetDuration(key)
	if d <= 0 {
		return fallback
	}
	return d
}
