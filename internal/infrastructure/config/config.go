// Package config resolves the process configuration from the environment.
//
// The container runtime sets these variables before the process starts; they
// are read exactly once here, at entry, and the resulting Config is passed
// explicitly to whatever needs it. Nothing else in the codebase calls
// os.Getenv.
package config

import "os"

const (
	// DefaultGeminiModel matches the model the service was built against.
	DefaultGeminiModel = "models/gemini-1.5-pro"

	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultMapsBaseURL   = "https://maps.googleapis.com"
)

// Config holds the settings of a single server process. It is immutable:
// built once by Load and never written afterwards.
type Config struct {
	// Port is the raw value of PORT. It is deliberately not defaulted and
	// not validated: an unset or malformed port must fail the listener and
	// exit the container, never silently bind a port of our choosing.
	Port string

	GeminiAPIKey string
	MapsAPIKey   string

	GeminiModel string

	// Base URL overrides, used by tests to point the clients at local
	// httptest servers. Production deployments leave them unset.
	GeminiBaseURL string
	MapsBaseURL   string
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:          os.Getenv("PORT"),
		GeminiAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		MapsAPIKey:    os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		MapsBaseURL:   os.Getenv("MAPS_BASE_URL"),
	}

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultGeminiModel
	}
	if cfg.GeminiBaseURL == "" {
		cfg.GeminiBaseURL = defaultGeminiBaseURL
	}
	if cfg.MapsBaseURL == "" {
		cfg.MapsBaseURL = defaultMapsBaseURL
	}

	return cfg
}

// ListenAddr builds the bind address for the HTTP server. The port is used
// verbatim; net.Listen rejects anything that is not a valid decimal port.
func (c Config) ListenAddr() string {
	return "0.0.0.0:" + c.Port
}
