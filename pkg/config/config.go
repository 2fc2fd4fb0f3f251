package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env             string
	Port            int
	APIPrefix       string
	ShutdownTimeout time.Duration

	CORS     CORSConfig
	Log      LogConfig
	Analysis AnalysisConfig
	Exports  ExportsConfig
	Docs     DocsConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AnalysisConfig bounds the declarations accepted from the form.
type AnalysisConfig struct {
	MinEntryYear     int
	MaxEntryYear     int
	MaxDeclaredHours int
}

// ExportsConfig toggles the downloadable analysis documents.
type ExportsConfig struct {
	Enabled bool
}

// DocsConfig toggles the swagger UI outside production.
type DocsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.ShutdownTimeout = parseDuration(v.GetString("SHUTDOWN_TIMEOUT"), 10*time.Second)

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Analysis = AnalysisConfig{
		MinEntryYear:     v.GetInt("ANALYSIS_MIN_ENTRY_YEAR"),
		MaxEntryYear:     v.GetInt("ANALYSIS_MAX_ENTRY_YEAR"),
		MaxDeclaredHours: v.GetInt("ANALYSIS_MAX_DECLARED_HOURS"),
	}
	if cfg.Analysis.MinEntryYear > cfg.Analysis.MaxEntryYear {
		return nil, fmt.Errorf("ANALYSIS_MIN_ENTRY_YEAR (%d) is after ANALYSIS_MAX_ENTRY_YEAR (%d)", cfg.Analysis.MinEntryYear, cfg.Analysis.MaxEntryYear)
	}
	if cfg.Analysis.MaxDeclaredHours < 0 {
		return nil, fmt.Errorf("ANALYSIS_MAX_DECLARED_HOURS must not be negative")
	}

	cfg.Exports = ExportsConfig{Enabled: v.GetBool("ENABLE_EXPORTS")}
	cfg.Docs = DocsConfig{Enabled: v.GetBool("ENABLE_DOCS")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ANALYSIS_MIN_ENTRY_YEAR", 2015)
	v.SetDefault("ANALYSIS_MAX_ENTRY_YEAR", 2025)
	v.SetDefault("ANALYSIS_MAX_DECLARED_HOURS", 500)

	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("ENABLE_DOCS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
