package config

import (
	"testing"
	"time"
)

// TestLoadDefaults tests the built-in fallbacks
func TestLoadDefaults(t *testing.T) {
	t.Setenv("SALESDESK_API_URL", "")
	t.Setenv("SALESDESK_TIMEOUT_SECONDS", "")

	cfg := Load()
	if cfg.APIBaseURL != defaultBaseURL {
		t.Errorf("Expected default base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != defaultTimeoutSeconds*time.Second {
		t.Errorf("Expected default timeout, got %v", cfg.Timeout)
	}
}

// TestLoadOverrides tests environment overrides
func TestLoadOverrides(t *testing.T) {
	t.Setenv("SALESDESK_API_URL", "http://erp.internal:9000")
	t.Setenv("SALESDESK_TIMEOUT_SECONDS", "30")

	cfg := Load()
	if cfg.APIBaseURL != "http://erp.internal:9000" {
		t.Errorf("Base URL override ignored: %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout override ignored: %v", cfg.Timeout)
	}
}

// TestLoadBadTimeout tests that junk timeouts fall back
func TestLoadBadTimeout(t *testing.T) {
	t.Setenv("SALESDESK_API_URL", "")
	t.Setenv("SALESDESK_TIMEOUT_SECONDS", "soon")

	cfg := Load()
	if cfg.Timeout != defaultTimeoutSeconds*time.Second {
		t.Errorf("Bad timeout should fall back, got %v", cfg.Timeout)
	}
}
