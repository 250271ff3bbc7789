// Package config loads application configuration from defaults, an optional
// .env file, and environment variables (in increasing precedence).
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Gemini  GeminiConfig
	Storage StorageConfig
	Log     LogConfig
}

type GeminiConfig struct {
	APIKey     string
	FlashModel string
	ProModel   string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Gemini: GeminiConfig{
			FlashModel: "gemini-2.5-flash",
			ProModel:   "gemini-3-pro-preview",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "trackandtreat")
	}
	return ".trackandtreat"
}

// Load reads configuration. A .env file in the working directory is loaded
// first if present (it never overrides variables already set in the
// environment), then TNT_* / GEMINI_API_KEY variables override defaults.
//
// The Gemini API key may be absent: only the AI commands need it, and the
// gateway reports the missing key when they run.
func Load() Config {
	// Ignore a missing .env; it's optional.
	_ = godotenv.Load()

	cfg := defaults()
	applyEnvOverrides(&cfg)
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	overrides := []struct {
		env   string
		apply func(v string)
	}{
		{"GEMINI_API_KEY", func(v string) { cfg.Gemini.APIKey = v }},
		{"TNT_GEMINI_FLASH_MODEL", func(v string) { cfg.Gemini.FlashModel = v }},
		{"TNT_GEMINI_PRO_MODEL", func(v string) { cfg.Gemini.ProModel = v }},
		{"TNT_DATA_DIR", func(v string) { cfg.Storage.DataDir = v }},
		{"TNT_LOG_LEVEL", func(v string) { cfg.Log.Level = v }},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			o.apply(v)
		}
	}
}
