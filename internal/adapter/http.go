package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-rest-facade/internal/config"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/internal/store"
	"github.com/MKhiriev/go-rest-facade/internal/utils"
	"github.com/MKhiriev/go-rest-facade/models"
)

// HTTPPipeline is the resty-backed [Requester].
type HTTPPipeline struct {
	client *utils.HTTPClient
	tokens store.TokenStore
	ids    *utils.RequestIDGenerator

	fallbackToken string

	mu      sync.RWMutex
	baseURL string

	logger *logger.Logger
}

var _ Requester = (*HTTPPipeline)(nil)

// NewHTTPPipeline constructs the request pipeline on top of client. The
// base URL is adapterCfg.BaseURL, normalised; appCfg.FallbackToken is sent
// whenever tokens holds no credential.
//
// Returns an error if the base URL is empty or is not an http(s) URL.
func NewHTTPPipeline(client *utils.HTTPClient, tokens store.TokenStore, adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (*HTTPPipeline, error) {
	baseURL, err := config.NormalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &HTTPPipeline{
		client:        client,
		tokens:        tokens,
		ids:           utils.NewRequestIDGenerator(),
		fallbackToken: store.NormalizeToken(appCfg.FallbackToken),
		baseURL:       baseURL,
		logger:        log,
	}, nil
}

// BaseURL returns the base URL relative request paths are resolved against.
func (p *HTTPPipeline) BaseURL() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.baseURL
}

// SetBaseURL re-targets the pipeline. Requests already in flight keep the
// URL they were started with.
func (p *HTTPPipeline) SetBaseURL(raw string) error {
	baseURL, err := config.NormalizeBaseURL(raw)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}

	p.mu.Lock()
	p.baseURL = baseURL
	p.mu.Unlock()
	return nil
}

// Request implements [Requester].
func (p *HTTPPipeline) Request(ctx context.Context, rawURL string, opts RequestOptions) (models.Payload, error) {
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodGet
	}
	target := p.resolve(rawURL)

	log := p.logger.With().
		Str("func", "HTTPPipeline.Request").
		Str("request_id", p.ids.Generate()).
		Str("method", method).
		Str("url", target).
		Logger()

	req := p.client.R().SetContext(ctx)
	for name, values := range p.headers(opts) {
		req.SetHeader(name, values[0])
	}
	if opts.Data != nil {
		body, err := json.Marshal(opts.Data)
		if err != nil {
			return models.Payload{}, fmt.Errorf("encode request payload: %w", err)
		}
		req.SetBody(body)
	}

	started := time.Now()
	resp, err := req.Execute(method, target)
	if err != nil {
		log.Err(err).Dur("duration", time.Since(started)).Msg("request failed before a response was received")
		return models.Payload{}, &NetworkError{Err: err}
	}
	log.Debug().Int("status", resp.StatusCode()).Dur("duration", time.Since(started)).Msg("response received")

	headerToken, err := headerCredential(resp.Header().Get)
	if err != nil {
		log.Warn().Err(err).Msg("response headers are not readable, skipping header credential")
	}
	if headerToken != "" {
		p.tokens.Set(headerToken)
		log.Debug().Msg("token saved from response header")
	}

	payload, err := decodeBody(resp.Header().Get("Content-Type"), resp.Body())
	if err != nil {
		log.Debug().Err(err).Msg("response body could not be decoded")
	}

	if err = mapHTTPError(resp.StatusCode(), payload); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode()).Msg("non-success status")
		return payload, err
	}

	if headerToken == "" {
		if bodyToken := bodyCredential(payload); bodyToken != "" {
			p.tokens.Set(bodyToken)
			log.Debug().Msg("token saved from response body")
		}
	}

	if err = mapBusinessError(payload); err != nil {
		log.Warn().Err(err).Str("code", payload.Envelope.CodeString()).Msg("business error")
		return payload, err
	}

	return payload, nil
}

// Get issues a GET request.
func (p *HTTPPipeline) Get(ctx context.Context, url string) (models.Payload, error) {
	return p.Request(ctx, url, RequestOptions{Method: http.MethodGet})
}

// Post issues a POST request with data as the JSON body.
func (p *HTTPPipeline) Post(ctx context.Context, url string, data any) (models.Payload, error) {
	return p.Request(ctx, url, RequestOptions{Method: http.MethodPost, Data: data})
}

// Put issues a PUT request with data as the JSON body.
func (p *HTTPPipeline) Put(ctx context.Context, url string, data any) (models.Payload, error) {
	return p.Request(ctx, url, RequestOptions{Method: http.MethodPut, Data: data})
}

// Delete issues a DELETE request.
func (p *HTTPPipeline) Delete(ctx context.Context, url string) (models.Payload, error) {
	return p.Request(ctx, url, RequestOptions{Method: http.MethodDelete})
}

func (p *HTTPPipeline) headers(opts RequestOptions) http.Header {
	h := http.Header{}
	h.Set("Accept", "*/*")
	if opts.Data != nil {
		h.Set("Content-Type", "application/json")
	}

	token := p.tokens.Get()
	if token == "" {
		token = p.fallbackToken
	}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}

	for name, value := range opts.Headers {
		h.Set(name, value)
	}
	return h
}

func (p *HTTPPipeline) resolve(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.IsAbs() {
		return rawURL
	}

	base := p.BaseURL()
	if rawURL == "" {
		return base
	}
	if !strings.HasPrefix(rawURL, "/") {
		rawURL = "/" + rawURL
	}
	return base + rawURL
}

// DecodeData decodes the envelope data (or the whole value for a
// non-envelope payload) into a new T.
func DecodeData[T any](payload models.Payload) (T, error) {
	var v T
	if err := payload.DecodeData(&v); err != nil {
		return v, err
	}
	return v, nil
}
