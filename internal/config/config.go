// Package config loads the gapi YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultTimeoutSeconds = 30
	defaultCacheTTLHours  = 24
)

type Config struct {
	LogFormat      string      `json:"log_format,omitempty" yaml:"log_format,omitempty"`
	LogLevel       string      `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	TimeoutSeconds int         `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
	Cache          CacheConfig `json:"cache,omitempty" yaml:"cache,omitempty"`
	APIs           []APIConfig `json:"apis" yaml:"apis"`
}

type CacheConfig struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	TTLHours int    `json:"ttl_hours,omitempty" yaml:"ttl_hours,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

type APIConfig struct {
	Name           string      `json:"name" yaml:"name"`
	Endpoint       string      `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	QuotaUser      string      `json:"quota_user,omitempty" yaml:"quota_user,omitempty"`
	TimeoutSeconds *int        `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
	RateLimit      *RateLimit  `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`
	Auth           *AuthConfig `json:"auth,omitempty" yaml:"auth,omitempty"`
}

// RateLimit caps dynamic calls to one API. Zero means unlimited.
type RateLimit struct {
	PerMinute int `json:"per_minute,omitempty" yaml:"per_minute,omitempty"`
	PerHour   int `json:"per_hour,omitempty" yaml:"per_hour,omitempty"`
	PerDay    int `json:"per_day,omitempty" yaml:"per_day,omitempty"`
}

type AuthConfig struct {
	Type            string   `json:"type" yaml:"type"`
	Key             string   `json:"key,omitempty" yaml:"key,omitempty"`                           // api-key
	Token           string   `json:"token,omitempty" yaml:"token,omitempty"`                       // bearer
	CredentialsFile string   `json:"credentials_file,omitempty" yaml:"credentials_file,omitempty"` // service-account
	ClientID        string   `json:"client_id,omitempty" yaml:"client_id,omitempty"`               // oauth2-refresh
	ClientSecret    string   `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`       // oauth2-refresh
	RefreshToken    string   `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`       // oauth2-refresh
	TokenURL        string   `json:"token_url,omitempty" yaml:"token_url,omitempty"`               // oauth2-refresh, optional
	Scopes          []string `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// Auth types.
const (
	AuthADC            = "adc"
	AuthAPIKey         = "api-key"
	AuthBearer         = "bearer"
	AuthServiceAccount = "service-account"
	AuthOAuth2Refresh  = "oauth2-refresh"
	AuthNone           = "none"
)

func (c *Config) ApplyDefaults() {
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.Cache.TTLHours == 0 {
		c.Cache.TTLHours = defaultCacheTTLHours
	}
	if c.Cache.Path == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			c.Cache.Path = filepath.Join(dir, "gapi", "discovery.db")
		}
	}
	c.Cache.Path = expandHome(c.Cache.Path)
	for i := range c.APIs {
		if c.APIs[i].TimeoutSeconds == nil {
			val := c.TimeoutSeconds
			c.APIs[i].TimeoutSeconds = &val
		}
		if c.APIs[i].Auth == nil {
			c.APIs[i].Auth = &AuthConfig{Type: AuthADC}
		}
		if c.APIs[i].Auth.CredentialsFile != "" {
			c.APIs[i].Auth.CredentialsFile = expandHome(c.APIs[i].Auth.CredentialsFile)
		}
	}
}

func (c *Config) Validate() error {
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format must be 'text' or 'json', got %q", c.LogFormat)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be >= 0")
	}
	if c.Cache.TTLHours < 0 {
		return fmt.Errorf("cache.ttl_hours must be >= 0")
	}
	seen := map[string]struct{}{}
	for i, api := range c.APIs {
		if api.Name == "" {
			return fmt.Errorf("apis[%d]: name is required", i)
		}
		if _, ok := seen[api.Name]; ok {
			return fmt.Errorf("apis[%d]: duplicate name %q", i, api.Name)
		}
		seen[api.Name] = struct{}{}
		if api.Endpoint != "" && !strings.HasPrefix(api.Endpoint, "http://") && !strings.HasPrefix(api.Endpoint, "https://") {
			return fmt.Errorf("apis[%d]: endpoint must be an http(s) URL", i)
		}
		if api.TimeoutSeconds != nil && *api.TimeoutSeconds < 0 {
			return fmt.Errorf("apis[%d]: timeout_seconds must be >= 0", i)
		}
		if rl := api.RateLimit; rl != nil && (rl.PerMinute < 0 || rl.PerHour < 0 || rl.PerDay < 0) {
			return fmt.Errorf("apis[%d]: rate_limit values must be >= 0", i)
		}
		if api.Auth != nil {
			if err := api.Auth.Validate(); err != nil {
				return fmt.Errorf("apis[%d]: %w", i, err)
			}
		}
	}
	return nil
}

func (a *AuthConfig) Validate() error {
	switch a.Type {
	case "":
		return fmt.Errorf("auth.type is required")
	case AuthADC, AuthNone:
	case AuthAPIKey:
		if a.Key == "" {
			return fmt.Errorf("auth.key is required for api-key")
		}
	case AuthBearer:
		if a.Token == "" {
			return fmt.Errorf("auth.token is required for bearer")
		}
	case AuthServiceAccount:
		if a.CredentialsFile == "" {
			return fmt.Errorf("auth.credentials_file is required for service-account")
		}
	case AuthOAuth2Refresh:
		if a.ClientID == "" || a.ClientSecret == "" || a.RefreshToken == "" {
			return fmt.Errorf("auth.client_id, auth.client_secret and auth.refresh_token are required for oauth2-refresh")
		}
	default:
		return fmt.Errorf("unsupported auth.type %q", a.Type)
	}
	return nil
}

// API returns the configuration for the named API, or nil.
func (c *Config) API(name string) *APIConfig {
	for i := range c.APIs {
		if c.APIs[i].Name == name {
			return &c.APIs[i]
		}
	}
	return nil
}

// Timeout returns the per-API request timeout, falling back to the global one.
func (c *Config) Timeout(api *APIConfig) time.Duration {
	if api != nil && api.TimeoutSeconds != nil {
		return time.Duration(*api.TimeoutSeconds) * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the discovery cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLHours) * time.Hour
}

// Secrets returns every credential value so log output can be redacted.
func (c *Config) Secrets() []string {
	var secrets []string
	for _, api := range c.APIs {
		if api.Auth == nil {
			continue
		}
		for _, s := range []string{api.Auth.Key, api.Auth.Token, api.Auth.ClientSecret, api.Auth.RefreshToken} {
			if s != "" {
				secrets = append(secrets, s)
			}
		}
	}
	return secrets
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
