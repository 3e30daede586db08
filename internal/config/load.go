package config

import (
	"errors"
	"fmt"
	"os"
)

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := &Config{}
		cfg.ApplyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return LoadFromBytes(data)
}

// ExpandEnv expands ${VAR} references in every string setting from the
// process environment. All unset variables are reported together as a
// *MissingEnvError.
func (c *Config) ExpandEnv() error {
	return c.expandEnv(os.LookupEnv)
}

func (c *Config) expandEnv(lookup func(string) (string, bool)) error {
	x := &envExpander{lookup: lookup}
	x.expand("cache.path", &c.Cache.Path)
	for i := range c.APIs {
		api := &c.APIs[i]
		prefix := fmt.Sprintf("apis[%d]", i)
		x.expand(prefix+".endpoint", &api.Endpoint)
		x.expand(prefix+".quota_user", &api.QuotaUser)
		if a := api.Auth; a != nil {
			x.expand(prefix+".auth.key", &a.Key)
			x.expand(prefix+".auth.token", &a.Token)
			x.expand(prefix+".auth.credentials_file", &a.CredentialsFile)
			x.expand(prefix+".auth.client_id", &a.ClientID)
			x.expand(prefix+".auth.client_secret", &a.ClientSecret)
			x.expand(prefix+".auth.refresh_token", &a.RefreshToken)
			x.expand(prefix+".auth.token_url", &a.TokenURL)
		}
	}
	return x.err()
}
