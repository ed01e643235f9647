package utils

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/publicsuffix"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and keeps
// the cookie jar the client sends cookies from, so that other components
// (the token store) can mirror state into it.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
	Jar http.CookieJar
}

// NewHTTPClient creates and returns a new HTTPClient instance backed by a
// fresh cookie jar using the public suffix list.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, cookie jar and state.
//
// Parameters:
//
//	timeout - overall request timeout; zero disables it
//
// Returns:
//
//	*HTTPClient - a ready-to-use HTTP client
//	error       - non-nil if the cookie jar cannot be created
func NewHTTPClient(timeout time.Duration) (*HTTPClient, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	client := resty.New().
		SetCookieJar(jar).
		SetTimeout(timeout)

	return &HTTPClient{Client: client, Jar: jar}, nil
}
