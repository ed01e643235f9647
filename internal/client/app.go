package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/internal/config"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/internal/service"
	"github.com/MKhiriev/go-rest-facade/internal/store"
	"github.com/MKhiriev/go-rest-facade/internal/utils"
	"github.com/MKhiriev/go-rest-facade/models"
)

// App is the assembled client. All collaborators share one HTTP client, so
// the token store's cookie mirror and the pipeline see the same jar.
type App struct {
	cfg *config.ClientConfig

	kv       store.KeyValueStore
	tokens   *store.PersistentTokenStore
	pipeline *adapter.HTTPPipeline
	services *service.Services

	// status receives human-readable status lines; nil means os.Stderr.
	status io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the configured key-value backend and builds the client on
// top of it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	kv, err := store.NewKeyValueStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create key-value store: %w", err)
	}

	app, err := newApp(cfg, kv, log)
	if err != nil {
		closeStore(kv)
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.ClientConfig, kv store.KeyValueStore, log *logger.Logger) (*App, error) {
	baseURL, err := resolveBaseURL(cfg.Adapter.BaseURL, kv, log)
	if err != nil {
		return nil, err
	}

	httpClient, err := utils.NewHTTPClient(cfg.Adapter.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	tokens := store.NewTokenStore(kv, httpClient.Jar, baseURL, log)
	tokens.Seed(cfg.App.FallbackToken)

	adapterCfg := cfg.Adapter
	adapterCfg.BaseURL = baseURL
	pipeline, err := adapter.NewHTTPPipeline(httpClient, tokens, adapterCfg, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create request pipeline: %w", err)
	}

	log.Info().Str("base_url", baseURL).Msg("client initialised")

	return &App{
		cfg:      cfg,
		kv:       kv,
		tokens:   tokens,
		pipeline: pipeline,
		services: service.NewServices(pipeline, tokens, log),
		logger:   log,
	}, nil
}

// resolveBaseURL applies explicit, then persisted, then the compiled-in
// default. A persisted value that no longer parses is skipped.
func resolveBaseURL(explicit string, kv store.KeyValueStore, log *logger.Logger) (string, error) {
	persisted := ""
	value, err := kv.Get(store.BaseURLKey)
	switch {
	case err == nil:
		persisted = strings.TrimSpace(string(value))
	case !errors.Is(err, store.ErrNoSuchKey):
		log.Warn().Err(err).Str("func", "client.resolveBaseURL").Msg("failed to read persisted base url")
	}

	baseURL, err := config.NormalizeBaseURL(config.ResolveBaseURL(explicit, persisted))
	if err == nil {
		return baseURL, nil
	}
	if strings.TrimSpace(explicit) != "" {
		return "", fmt.Errorf("%w: %w", config.ErrInvalidAdapterConfigs, err)
	}

	log.Warn().Err(err).Str("persisted", persisted).Msg("ignoring invalid persisted base url")
	return config.NormalizeBaseURL(config.DefaultBaseURL)
}

// Services returns the backend services bound to this client.
func (a *App) Services() *service.Services {
	return a.services
}

// Request implements [adapter.Requester].
func (a *App) Request(ctx context.Context, url string, opts adapter.RequestOptions) (models.Payload, error) {
	return a.pipeline.Request(ctx, url, opts)
}

// BaseURL implements [Client].
func (a *App) BaseURL() string {
	return a.pipeline.BaseURL()
}

// SetBaseURL implements [Client]. The new value is persisted under
// [store.BaseURLKey] before the pipeline and the cookie mirror move to it.
func (a *App) SetBaseURL(next string) error {
	if strings.TrimSpace(next) == "" {
		return nil
	}

	baseURL, err := config.NormalizeBaseURL(next)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidAdapterConfigs, err)
	}

	if err = a.kv.Set(store.BaseURLKey, []byte(baseURL)); err != nil {
		return fmt.Errorf("persist base url: %w", err)
	}

	return a.reload(baseURL)
}

// reload re-targets everything derived from the base URL.
func (a *App) reload(baseURL string) error {
	if err := a.pipeline.SetBaseURL(baseURL); err != nil {
		return err
	}
	a.tokens.SetOrigin(baseURL)

	if token := a.tokens.Get(); token != "" {
		a.tokens.Set(token)
	} else {
		a.tokens.Seed(a.cfg.App.FallbackToken)
	}

	a.logger.Info().Str("base_url", baseURL).Msg("base url changed")
	return nil
}

// Token implements [Client].
func (a *App) Token() string {
	return a.tokens.Get()
}

// SetToken implements [Client].
func (a *App) SetToken(raw string) {
	if store.NormalizeToken(raw) == "" {
		a.tokens.Clear()
		return
	}
	a.tokens.Set(raw)
}

// ClearToken implements [Client].
func (a *App) ClearToken() {
	a.tokens.Clear()
}

// InspectToken implements [Client]. With no stored credential the fallback
// credential the pipeline would send is inspected instead.
func (a *App) InspectToken() (models.TokenInfo, error) {
	token := a.tokens.Get()
	if token == "" {
		token = store.NormalizeToken(a.cfg.App.FallbackToken)
	}
	return utils.InspectToken(token)
}

// Close releases the key-value backend.
func (a *App) Close() error {
	if c, ok := a.kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func closeStore(kv store.KeyValueStore) {
	if c, ok := kv.(io.Closer); ok {
		_ = c.Close()
	}
}
