package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the process needs to talk to the marketplace.
// All knobs come from the environment (WALLABRIDGE_*) or an optional
// bridge.json next to the binary; sane defaults cover the rest.
type Config struct {
	Address         string        `mapstructure:"address"`
	APIBase         string        `mapstructure:"api_base"`
	WebBase         string        `mapstructure:"web_base"`
	ChatBase        string        `mapstructure:"chat_base"`
	ProxyURL        string        `mapstructure:"proxy_url"`
	UpstreamTimeout time.Duration `mapstructure:"upstream_timeout"`
}

// Load reads the configuration once at startup.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("bridge")
	v.SetConfigType("json")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("WALLABRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("address", ":8080")
	v.SetDefault("api_base", "https://api.wallapop.com/api/v3")
	v.SetDefault("web_base", "https://es.wallapop.com")
	v.SetDefault("chat_base", "https://es.wallapop.com/app/chat")
	v.SetDefault("proxy_url", "")
	v.SetDefault("upstream_timeout", "30s")

	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.ProxyURL != "" {
		if _, err := url.Parse(cfg.ProxyURL); err != nil {
			return nil, fmt.Errorf("invalid proxy_url: %w", err)
		}
	}
	if cfg.Address != "" && !strings.HasPrefix(cfg.Address, ":") && !strings.Contains(cfg.Address, ":") {
		cfg.Address = ":" + cfg.Address
	}

	return &cfg, nil
}
