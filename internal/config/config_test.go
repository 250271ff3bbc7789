package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := defaults()

	if cfg.Gemini.FlashModel != "gemini-2.5-flash" {
		t.Errorf("FlashModel = %q", cfg.Gemini.FlashModel)
	}
	if cfg.Gemini.ProModel != "gemini-3-pro-preview" {
		t.Errorf("ProModel = %q", cfg.Gemini.ProModel)
	}
	if cfg.Gemini.APIKey != "" {
		t.Errorf("APIKey should default to empty, got %q", cfg.Gemini.APIKey)
	}
	if cfg.Storage.DataDir == "" {
		t.Error("DataDir should have a default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("TNT_DATA_DIR", "/tmp/tnt-test")
	t.Setenv("TNT_LOG_LEVEL", "debug")
	t.Setenv("TNT_GEMINI_FLASH_MODEL", "flash-x")

	cfg := defaults()
	applyEnvOverrides(&cfg)

	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("APIKey = %q", cfg.Gemini.APIKey)
	}
	if cfg.Storage.DataDir != "/tmp/tnt-test" {
		t.Errorf("DataDir = %q", cfg.Storage.DataDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Gemini.FlashModel != "flash-x" {
		t.Errorf("FlashModel = %q", cfg.Gemini.FlashModel)
	}
	// Unset vars leave defaults intact.
	if cfg.Gemini.ProModel != "gemini-3-pro-preview" {
		t.Errorf("ProModel = %q, want default", cfg.Gemini.ProModel)
	}
}
