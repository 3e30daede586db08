package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gapi/internal/config"
)

func TestClientOptionsUnsupported(t *testing.T) {
	_, err := ClientOptions(context.Background(), &config.APIConfig{Name: "x", Auth: &config.AuthConfig{Type: "basic"}}, nil)
	require.ErrorContains(t, err, `unsupported type "basic"`)
}

func TestClientOptionsCounts(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		api  *config.APIConfig
		want int
	}{
		{"nil config", nil, 1},
		{"adc", &config.APIConfig{}, 1},
		{"api key with endpoint", &config.APIConfig{Endpoint: "http://localhost/", Auth: &config.AuthConfig{Type: config.AuthAPIKey, Key: "k"}}, 2},
		{"service account", &config.APIConfig{Auth: &config.AuthConfig{Type: config.AuthServiceAccount, CredentialsFile: "sa.json"}}, 2},
		{"none", &config.APIConfig{Auth: &config.AuthConfig{Type: config.AuthNone}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ClientOptions(ctx, tt.api, []string{"https://www.googleapis.com/auth/content"})
			require.NoError(t, err)
			require.Len(t, opts, tt.want)
		})
	}
}

func TestNewHTTPClientAPIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
	}))
	defer srv.Close()

	client, err := NewHTTPClient(context.Background(), &config.APIConfig{
		Auth: &config.AuthConfig{Type: config.AuthAPIKey, Key: "AIza-test"},
	}, nil)
	require.NoError(t, err)
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "AIza-test", gotKey)
}

func TestNewHTTPClientBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client, err := NewHTTPClient(context.Background(), &config.APIConfig{
		Auth: &config.AuthConfig{Type: config.AuthBearer, Token: "ya29.token"},
	}, nil)
	require.NoError(t, err)
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "Bearer ya29.token", gotAuth)
}

func TestRefreshTokenSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("grant_type") != "refresh_token" ||
			r.PostForm.Get("refresh_token") != "1//r" ||
			r.PostForm.Get("client_id") != "cid" ||
			r.PostForm.Get("client_secret") != "sec" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	ts := RefreshTokenSource(context.Background(), &config.AuthConfig{
		Type:         config.AuthOAuth2Refresh,
		ClientID:     "cid",
		ClientSecret: "sec",
		RefreshToken: "1//r",
		TokenURL:     srv.URL,
	}, nil)
	tok, err := ts.Token()
	require.NoError(t, err)
	require.Equal(t, "fresh", tok.AccessToken)
	require.True(t, tok.Valid())
}

func TestCallOptions(t *testing.T) {
	require.Nil(t, CallOptions(nil))
	require.Nil(t, CallOptions(&config.APIConfig{}))
	opts := CallOptions(&config.APIConfig{QuotaUser: "team-a"})
	require.Len(t, opts, 1)
	k, v := opts[0].Get()
	require.Equal(t, "quotaUser", k)
	require.Equal(t, "team-a", v)
}
