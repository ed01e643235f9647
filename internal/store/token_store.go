package store

import (
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/internal/utils"
)

// Durable keys and the cookie name shared with the backend.
const (
	TokenKey        = "API_TOKEN"
	BaseURLKey      = "API_BASE"
	TokenCookieName = "API_TOKEN"
)

var bearerPrefix = regexp.MustCompile(`(?i)^\s*bearer\s+`)

// NormalizeToken strips a leading "Bearer " prefix in any casing and the
// surrounding whitespace.
func NormalizeToken(raw string) string {
	return strings.TrimSpace(bearerPrefix.ReplaceAllString(raw, ""))
}

// PersistentTokenStore is the [TokenStore] used by the client. The durable
// key-value store is authoritative; the credential is mirrored as a cookie
// into the HTTP client's jar for the backend origin.
type PersistentTokenStore struct {
	kv  KeyValueStore
	jar http.CookieJar

	mu     sync.RWMutex
	origin *url.URL

	logger *logger.Logger
}

var _ TokenStore = (*PersistentTokenStore)(nil)

// NewTokenStore returns a token store persisting into kv and mirroring into
// jar for baseURL's origin. jar may be nil, which disables the cookie
// mirror.
func NewTokenStore(kv KeyValueStore, jar http.CookieJar, baseURL string, log *logger.Logger) *PersistentTokenStore {
	s := &PersistentTokenStore{kv: kv, jar: jar, logger: log}
	s.SetOrigin(baseURL)
	return s
}

// SetOrigin re-targets the cookie mirror to the origin of baseURL.
func (s *PersistentTokenStore) SetOrigin(baseURL string) {
	origin := originOf(baseURL)
	if origin == nil {
		s.logger.Warn().Str("func", "PersistentTokenStore.SetOrigin").Str("base_url", baseURL).
			Msg("cannot derive cookie origin, cookie mirror disabled")
	}

	s.mu.Lock()
	s.origin = origin
	s.mu.Unlock()
}

// Get implements [TokenStore]. Only the durable store is consulted.
func (s *PersistentTokenStore) Get() string {
	value, err := s.kv.Get(TokenKey)
	if err != nil {
		if !errors.Is(err, ErrNoSuchKey) {
			s.logger.Warn().Err(err).Str("func", "PersistentTokenStore.Get").Msg("failed to read token")
		}
		return ""
	}
	return strings.TrimSpace(string(value))
}

// Set implements [TokenStore].
func (s *PersistentTokenStore) Set(raw string) {
	token := NormalizeToken(raw)
	if token == "" {
		return
	}

	if err := s.kv.Set(TokenKey, []byte(token)); err != nil {
		s.logger.Warn().Err(err).Str("func", "PersistentTokenStore.Set").Msg("failed to persist token")
	}

	s.setCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    utils.EscapeComponent(token),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear implements [TokenStore].
func (s *PersistentTokenStore) Clear() {
	if err := s.kv.Delete(TokenKey); err != nil {
		s.logger.Warn().Err(err).Str("func", "PersistentTokenStore.Clear").Msg("failed to delete token")
	}

	// MaxAge < 0 makes the jar drop the cookie.
	s.setCookie(&http.Cookie{
		Name:   TokenCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// Seed stores fallback when no credential is persisted yet.
func (s *PersistentTokenStore) Seed(fallback string) {
	if s.Get() != "" {
		return
	}
	s.Set(fallback)
}

func (s *PersistentTokenStore) setCookie(cookie *http.Cookie) {
	if s.jar == nil {
		return
	}

	s.mu.RLock()
	origin := s.origin
	s.mu.RUnlock()
	if origin == nil {
		return
	}

	s.jar.SetCookies(origin, []*http.Cookie{cookie})
}

func originOf(baseURL string) *url.URL {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}
}

// DecodeCookieValue reverses the percent-encoding of the token cookie.
func DecodeCookieValue(v string) (string, error) {
	return url.PathUnescape(v)
}
