package config

import (
	"testing"
	"time"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Address != ":8080" {
		t.Errorf("Address got %q, want :8080", cfg.Address)
	}
	if cfg.APIBase != "https://api.wallapop.com/api/v3" {
		t.Errorf("APIBase got %q", cfg.APIBase)
	}
	if cfg.WebBase != "https://es.wallapop.com" {
		t.Errorf("WebBase got %q", cfg.WebBase)
	}
	if cfg.ChatBase != "https://es.wallapop.com/app/chat" {
		t.Errorf("ChatBase got %q", cfg.ChatBase)
	}
	if cfg.ProxyURL != "" {
		t.Errorf("ProxyURL got %q, want empty", cfg.ProxyURL)
	}
	if cfg.UpstreamTimeout != 30*time.Second {
		t.Errorf("UpstreamTimeout got %v, want 30s", cfg.UpstreamTimeout)
	}
}

func TestLoad_envOverrides(t *testing.T) {
	t.Setenv("WALLABRIDGE_ADDRESS", "9090")
	t.Setenv("WALLABRIDGE_PROXY_URL", "http://127.0.0.1:8888")
	t.Setenv("WALLABRIDGE_UPSTREAM_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Address != ":9090" {
		t.Errorf("Address got %q, want bare port normalized to :9090", cfg.Address)
	}
	if cfg.ProxyURL != "http://127.0.0.1:8888" {
		t.Errorf("ProxyURL got %q", cfg.ProxyURL)
	}
	if cfg.UpstreamTimeout != 5*time.Second {
		t.Errorf("UpstreamTimeout got %v, want 5s", cfg.UpstreamTimeout)
	}
}
