// Package auth turns configured credentials into client options for the
// Google API transport.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"

	"gapi/internal/config"
)

// ClientOptions maps an API's configuration to client options. defaultScopes
// are used unless the configuration lists its own.
func ClientOptions(ctx context.Context, api *config.APIConfig, defaultScopes []string) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if api == nil {
		return []option.ClientOption{option.WithScopes(defaultScopes...)}, nil
	}
	if api.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(api.Endpoint))
	}

	a := api.Auth
	if a == nil {
		a = &config.AuthConfig{Type: config.AuthADC}
	}
	scopes := defaultScopes
	if len(a.Scopes) > 0 {
		scopes = a.Scopes
	}

	switch a.Type {
	case config.AuthADC, "":
		opts = append(opts, option.WithScopes(scopes...))
	case config.AuthAPIKey:
		opts = append(opts, option.WithAPIKey(a.Key))
	case config.AuthBearer:
		opts = append(opts, option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: a.Token,
			TokenType:   "Bearer",
		})))
	case config.AuthServiceAccount:
		opts = append(opts, option.WithCredentialsFile(a.CredentialsFile), option.WithScopes(scopes...))
	case config.AuthOAuth2Refresh:
		opts = append(opts, option.WithTokenSource(RefreshTokenSource(ctx, a, scopes)))
	case config.AuthNone:
		opts = append(opts, option.WithoutAuthentication())
	default:
		return nil, fmt.Errorf("auth: unsupported type %q", a.Type)
	}
	return opts, nil
}

// RefreshTokenSource returns a token source that exchanges the configured
// refresh token at Google's token endpoint, or at token_url when set.
func RefreshTokenSource(ctx context.Context, a *config.AuthConfig, scopes []string) oauth2.TokenSource {
	endpoint := google.Endpoint
	if a.TokenURL != "" {
		endpoint = oauth2.Endpoint{TokenURL: a.TokenURL, AuthStyle: oauth2.AuthStyleInParams}
	}
	conf := &oauth2.Config{
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}
	return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: a.RefreshToken})
}

// NewHTTPClient builds an authenticated client for api.
func NewHTTPClient(ctx context.Context, api *config.APIConfig, defaultScopes []string) (*http.Client, error) {
	opts, err := ClientOptions(ctx, api, defaultScopes)
	if err != nil {
		return nil, err
	}
	client, _, err := htransport.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("auth: build http client: %w", err)
	}
	return client, nil
}

// CallOptions returns the per-call options configured for api.
func CallOptions(api *config.APIConfig) []googleapi.CallOption {
	if api == nil || api.QuotaUser == "" {
		return nil
	}
	return []googleapi.CallOption{googleapi.QuotaUser(api.QuotaUser)}
}
