package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GOOGLE_API_KEY", "gemini-key")
	t.Setenv("GOOGLE_MAPS_API_KEY", "maps-key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_BASE_URL", "")
	t.Setenv("MAPS_BASE_URL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
	assert.Equal(t, "maps-key", cfg.MapsAPIKey)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.GeminiBaseURL)
	assert.Equal(t, "https://maps.googleapis.com", cfg.MapsBaseURL)
	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddr())
}

func TestLoad_NoPortDefault(t *testing.T) {
	t.Setenv("PORT", "")

	cfg := Load()

	// The artifact never chooses a port itself; an empty value propagates
	// into the bind address and fails the listener at startup.
	assert.Equal(t, "", cfg.Port)
	assert.Equal(t, "0.0.0.0:", cfg.ListenAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "models/gemini-1.5-flash")
	t.Setenv("GEMINI_BASE_URL", "http://127.0.0.1:9001")
	t.Setenv("MAPS_BASE_URL", "http://127.0.0.1:9002")

	cfg := Load()

	assert.Equal(t, "models/gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "http://127.0.0.1:9001", cfg.GeminiBaseURL)
	assert.Equal(t, "http://127.0.0.1:9002", cfg.MapsBaseURL)
}
