package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "empty api list",
			cfg:  Config{},
		},
		{
			name: "valid api key",
			cfg: Config{APIs: []APIConfig{
				{Name: "factchecktools", Auth: &AuthConfig{Type: AuthAPIKey, Key: "AIza"}},
			}},
		},
		{
			name: "valid refresh token",
			cfg: Config{APIs: []APIConfig{
				{Name: "content", Auth: &AuthConfig{Type: AuthOAuth2Refresh, ClientID: "id", ClientSecret: "s", RefreshToken: "r"}},
			}},
		},
		{
			name: "valid rate limit",
			cfg: Config{APIs: []APIConfig{
				{Name: "content", RateLimit: &RateLimit{PerMinute: 60, PerDay: 1000}},
			}},
		},
		{
			name:    "negative rate limit",
			cfg:     Config{APIs: []APIConfig{{Name: "content", RateLimit: &RateLimit{PerHour: -1}}}},
			wantErr: true,
			errMsg:  "apis[0]: rate_limit values must be >= 0",
		},
		{
			name:    "missing name",
			cfg:     Config{APIs: []APIConfig{{}, {Name: "x"}}},
			wantErr: true,
			errMsg:  "apis[0]: name is required",
		},
		{
			name:    "duplicate name",
			cfg:     Config{APIs: []APIConfig{{Name: "sasportal"}, {Name: "sasportal"}}},
			wantErr: true,
			errMsg:  `apis[1]: duplicate name "sasportal"`,
		},
		{
			name:    "bad endpoint",
			cfg:     Config{APIs: []APIConfig{{Name: "vmmigration", Endpoint: "vmmigration.googleapis.com"}}},
			wantErr: true,
			errMsg:  "endpoint must be an http(s) URL",
		},
		{
			name:    "api key without key",
			cfg:     Config{APIs: []APIConfig{{Name: "content", Auth: &AuthConfig{Type: AuthAPIKey}}}},
			wantErr: true,
			errMsg:  "apis[0]: auth.key is required for api-key",
		},
		{
			name:    "bearer without token",
			cfg:     Config{APIs: []APIConfig{{Name: "content", Auth: &AuthConfig{Type: AuthBearer}}}},
			wantErr: true,
			errMsg:  "auth.token is required",
		},
		{
			name:    "service account without file",
			cfg:     Config{APIs: []APIConfig{{Name: "content", Auth: &AuthConfig{Type: AuthServiceAccount}}}},
			wantErr: true,
			errMsg:  "auth.credentials_file is required",
		},
		{
			name:    "refresh without secret",
			cfg:     Config{APIs: []APIConfig{{Name: "content", Auth: &AuthConfig{Type: AuthOAuth2Refresh, ClientID: "id"}}}},
			wantErr: true,
			errMsg:  "required for oauth2-refresh",
		},
		{
			name:    "unknown auth type",
			cfg:     Config{APIs: []APIConfig{{Name: "content", Auth: &AuthConfig{Type: "basic"}}}},
			wantErr: true,
			errMsg:  `unsupported auth.type "basic"`,
		},
		{
			name:    "bad log format",
			cfg:     Config{LogFormat: "xml"},
			wantErr: true,
			errMsg:  "log_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	timeout := 5
	cfg := Config{
		Cache: CacheConfig{Path: "~/cache/discovery.db"},
		APIs: []APIConfig{
			{Name: "factchecktools"},
			{Name: "content", TimeoutSeconds: &timeout, Auth: &AuthConfig{Type: AuthNone}},
		},
	}
	cfg.ApplyDefaults()

	if cfg.LogFormat != "text" || cfg.LogLevel != "info" {
		t.Errorf("unexpected log defaults: %q %q", cfg.LogFormat, cfg.LogLevel)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("expected global timeout to be 30, got %d", cfg.TimeoutSeconds)
	}
	if cfg.CacheTTL() != 24*time.Hour {
		t.Errorf("expected 24h ttl, got %v", cfg.CacheTTL())
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "cache", "discovery.db"); cfg.Cache.Path != want {
		t.Errorf("expected cache path %q, got %q", want, cfg.Cache.Path)
	}
	if got := cfg.Timeout(&cfg.APIs[0]); got != 30*time.Second {
		t.Errorf("expected first API timeout to be 30s, got %v", got)
	}
	if got := cfg.Timeout(cfg.API("content")); got != 5*time.Second {
		t.Errorf("expected second API timeout to be 5s, got %v", got)
	}
	if cfg.APIs[0].Auth == nil || cfg.APIs[0].Auth.Type != AuthADC {
		t.Errorf("expected adc default auth, got %+v", cfg.APIs[0].Auth)
	}
	if cfg.APIs[1].Auth.Type != AuthNone {
		t.Errorf("explicit auth overwritten: %+v", cfg.APIs[1].Auth)
	}
	if cfg.API("missing") != nil {
		t.Errorf("expected nil for unknown api")
	}
}

func TestLoadFromBytes(t *testing.T) {
	t.Setenv("GAPI_TEST_KEY", "AIzaSecret")
	t.Setenv("GAPI_TEST_REFRESH", "1//refresh")
	data := []byte(`
log_format: json
log_level: debug
timeout_seconds: 12
cache:
  path: /tmp/gapi.db
  ttl_hours: 2
apis:
  - name: factchecktools
    quota_user: team-a
    auth:
      type: api-key
      key: ${GAPI_TEST_KEY}
  - name: content
    endpoint: http://localhost:9000/content/v2.1/
    timeout_seconds: 3
    auth:
      type: oauth2-refresh
      client_id: client.apps.googleusercontent.com
      client_secret: shh
      refresh_token: ${GAPI_TEST_REFRESH}
      scopes: [https://www.googleapis.com/auth/content]
`)
	cfg, err := LoadFromBytes(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogFormat != "json" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected logging settings: %+v", cfg)
	}
	if cfg.Cache.Path != "/tmp/gapi.db" || cfg.CacheTTL() != 2*time.Hour {
		t.Fatalf("unexpected cache settings: %+v", cfg.Cache)
	}
	fc := cfg.API("factchecktools")
	if fc.Auth.Key != "AIzaSecret" || fc.QuotaUser != "team-a" {
		t.Fatalf("unexpected factchecktools config: %+v %+v", fc, fc.Auth)
	}
	if got := cfg.Timeout(fc); got != 12*time.Second {
		t.Fatalf("unexpected timeout: %v", got)
	}
	content := cfg.API("content")
	if content.Auth.RefreshToken != "1//refresh" || len(content.Auth.Scopes) != 1 {
		t.Fatalf("unexpected content auth: %+v", content.Auth)
	}

	secrets := cfg.Secrets()
	want := []string{"AIzaSecret", "shh", "1//refresh"}
	if strings.Join(secrets, ",") != strings.Join(want, ",") {
		t.Fatalf("secrets = %v, want %v", secrets, want)
	}
}

func TestLoadFromBytesMissingEnv(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
apis:
  - name: content
    auth:
      type: bearer
      token: ${GAPI_DEFINITELY_UNSET}
`))
	if err == nil || !strings.Contains(err.Error(), "apis[0].auth.token: missing env var GAPI_DEFINITELY_UNSET") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TimeoutSeconds != 30 || len(cfg.APIs) != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidateYAML(t *testing.T) {
	if err := ValidateYAML([]byte("apis:\n  - name: x\n    auth:\n      type: bearer\n      token: ${UNSET_IS_FINE}\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateYAML([]byte("apis: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}
