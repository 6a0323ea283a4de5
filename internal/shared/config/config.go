package config

import (
	"strings"

	"github.com/spf13/viper"

	"ai-roadmap/internal/roadmap"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	LogLevel         string
	CORSAllowOrigin  []string
	RateLimitRPS     float64
	RateLimitBurst   int
	SiteTitle        string
	DefaultObjective string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("SITE_TITLE", "AI product roadmap")
	v.SetDefault("DEFAULT_OBJECTIVE", roadmap.DefaultObjective)
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Port:             v.GetString("PORT"),
		Env:              normalizeEnv(v.GetString("ENV")),
		LogLevel:         strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		CORSAllowOrigin:  splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		RateLimitRPS:     v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:   v.GetInt("RATE_LIMIT_BURST"),
		SiteTitle:        v.GetString("SITE_TITLE"),
		DefaultObjective: v.GetString("DEFAULT_OBJECTIVE"),
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
