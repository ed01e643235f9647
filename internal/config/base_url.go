package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveBaseURL picks the effective backend base URL: the explicit value
// first, then the persisted override, then [DefaultBaseURL]. Trailing
// slashes are stripped.
func ResolveBaseURL(explicit, persisted string) string {
	for _, candidate := range []string{explicit, persisted} {
		if s := strings.TrimSpace(candidate); s != "" {
			return trimTrailingSlashes(s)
		}
	}
	return trimTrailingSlashes(DefaultBaseURL)
}

// NormalizeBaseURL validates raw as an absolute http(s) URL and strips
// trailing slashes. A missing scheme defaults to http.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	return trimTrailingSlashes(u.String()), nil
}

func trimTrailingSlashes(s string) string {
	return strings.TrimRight(s, "/")
}
