package thenvoitest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds integration-test configuration for the Thenvoi platform.
// Values resolve in order: defaults, then an optional YAML file, then
// environment variables.
//
//	settings := thenvoitest.LoadSettings()
//	if settings.HasAPIKey() {
//	    // run against the real backend
//	}
type Settings struct {
	// APIKey is the primary agent API key.
	// Env: THENVOI_API_KEY.
	APIKey string `yaml:"api_key"`

	// TestAgentID is the primary agent's UUID.
	// Env: TEST_AGENT_ID.
	TestAgentID string `yaml:"test_agent_id"`

	// APIKey2 and TestAgentID2 are secondary agent credentials for
	// multi-agent tests. Env: THENVOI_API_KEY_2, TEST_AGENT_ID_2.
	APIKey2      string `yaml:"api_key_2"`
	TestAgentID2 string `yaml:"test_agent_id_2"`

	// UserAPIKey is the user API key for user operations such as
	// registering agents. Env: THENVOI_API_KEY_USER.
	UserAPIKey string `yaml:"user_api_key"`

	// BaseURL is the REST API base URL. Env: THENVOI_BASE_URL.
	BaseURL string `yaml:"base_url"`

	// WSURL is the WebSocket endpoint URL. Env: THENVOI_WS_URL.
	WSURL string `yaml:"ws_url"`
}

func defaultSettings() Settings {
	return Settings{
		BaseURL: "http://localhost:4000",
		WSURL:   "ws://localhost:4000/api/v1/socket/websocket",
	}
}

// LoadSettings resolves settings from defaults and environment variables.
func LoadSettings() Settings {
	s := defaultSettings()
	s.applyEnv()
	return s
}

// LoadSettingsFile resolves settings from defaults, a YAML file, and
// environment variables, in that order. A missing file is not an error;
// an unreadable or malformed one is.
func LoadSettingsFile(path string) (Settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to env resolution
	case err != nil:
		return s, fmt.Errorf("read settings file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse settings file %s: %w", path, err)
		}
	}

	s.applyEnv()
	return s, nil
}

func (s *Settings) applyEnv() {
	setFromEnv(&s.APIKey, "THENVOI_API_KEY")
	setFromEnv(&s.TestAgentID, "TEST_AGENT_ID")
	setFromEnv(&s.APIKey2, "THENVOI_API_KEY_2")
	setFromEnv(&s.TestAgentID2, "TEST_AGENT_ID_2")
	setFromEnv(&s.UserAPIKey, "THENVOI_API_KEY_USER")
	setFromEnv(&s.BaseURL, "THENVOI_BASE_URL")
	setFromEnv(&s.WSURL, "THENVOI_WS_URL")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// HasAPIKey reports whether the primary API key is configured.
func (s Settings) HasAPIKey() bool {
	return s.APIKey != ""
}

// HasMultiAgent reports whether both agent API keys are configured.
func (s Settings) HasMultiAgent() bool {
	return s.APIKey != "" && s.APIKey2 != ""
}

// HasUserAPI reports whether the user API key is configured.
func (s Settings) HasUserAPI() bool {
	return s.UserAPIKey != ""
}

// RealBackend describes a live backend target for integration tests.
type RealBackend struct {
	BaseURL string
	WSURL   string
	APIKey  string
}

// RealBackend returns the live backend target, or a *CapabilityError naming
// the missing configuration when no API key is set.
func (s Settings) RealBackend() (*RealBackend, error) {
	if !s.HasAPIKey() {
		return nil, &CapabilityError{
			Capability: "real-backend",
			Hint:       "set THENVOI_API_KEY to run integration tests against a live backend",
		}
	}
	return &RealBackend{
		BaseURL: s.BaseURL,
		WSURL:   s.WSURL,
		APIKey:  s.APIKey,
	}, nil
}
