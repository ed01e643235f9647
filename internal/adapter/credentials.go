package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rest-facade/models"
)

// credentialHeaders are probed in order; the first non-empty value wins.
var credentialHeaders = []string{
	"authorization",
	"Authorization",
	"x-auth-token",
	"X-Auth-Token",
	"token",
	"Token",
}

// headerCredential returns the first credential found through get. A panic
// raised while reading headers is recovered and reported as err with no
// credential.
func headerCredential(get func(name string) string) (token string, err error) {
	defer func() {
		if r := recover(); r != nil {
			token = ""
			err = fmt.Errorf("cannot read response headers: %v", r)
		}
	}()

	for _, name := range credentialHeaders {
		if v := strings.TrimSpace(get(name)); v != "" {
			return v, nil
		}
	}
	return "", nil
}

// bodyCredential probes data.token, data.authorization, token and
// authorization for the first non-empty string.
func bodyCredential(payload models.Payload) string {
	obj, ok := payload.Value.(map[string]any)
	if !ok {
		return ""
	}

	if data, ok := obj["data"].(map[string]any); ok {
		for _, key := range []string{"token", "authorization"} {
			if s, ok := data[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	for _, key := range []string{"token", "authorization"} {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
