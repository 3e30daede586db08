// Package redact masks credentials in strings before they reach logs or
// command output.
package redact

import (
	"net/url"
	"sort"
	"strings"
)

const mask = "[REDACTED]"

// sensitiveParams are query parameters whose values are always masked.
var sensitiveParams = []string{"key", "access_token", "oauth_token"}

// Redactor replaces configured secrets in strings.
type Redactor struct {
	secrets []string
}

func NewRedactor() *Redactor {
	return &Redactor{}
}

// AddSecrets registers values to mask. Longer secrets are replaced first so
// a secret that contains another is masked whole.
func (r *Redactor) AddSecrets(secrets []string) {
	for _, s := range secrets {
		if s == "" {
			continue
		}
		r.secrets = append(r.secrets, s)
	}
	sort.SliceStable(r.secrets, func(i, j int) bool { return len(r.secrets[i]) > len(r.secrets[j]) })
}

func (r *Redactor) Redact(input string) string {
	if r == nil {
		return input
	}
	out := input
	for _, secret := range r.secrets {
		out = strings.ReplaceAll(out, secret, mask)
	}
	return out
}

// URL returns u as a string with credential query parameters and userinfo
// passwords masked, followed by Redact.
func (r *Redactor) URL(u *url.URL) string {
	if u == nil {
		return ""
	}
	cp := *u
	if cp.RawQuery != "" {
		q := cp.Query()
		changed := false
		for _, name := range sensitiveParams {
			if _, ok := q[name]; ok {
				q.Set(name, mask)
				changed = true
			}
		}
		if changed {
			cp.RawQuery = q.Encode()
		}
	}
	return r.Redact(cp.Redacted())
}
