// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single entry point through which the client talks
// to the REST backend.
//
// [HTTPPipeline] assembles headers (including the bearer credential from the
// token store), performs the call with resty, harvests any new credential
// from the response headers or body, decodes the body into a
// [models.Payload] and classifies the outcome. Failures are reported as
// [*NetworkError], [*HTTPError] or [*BusinessError]; each matches its
// sentinel ([ErrNetwork], [ErrHTTP], [ErrBusiness]) with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rest-facade/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Requester performs a single backend call and returns the normalized
// response. url is either absolute or a path relative to the configured
// base URL.
type Requester interface {
	Request(ctx context.Context, url string, opts RequestOptions) (models.Payload, error)
}

// RequestOptions describes one call. The zero value is a GET without body.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Data is serialised as the JSON body. nil means no body.
	Data any
	// Headers are applied last and override the assembled headers,
	// including the authorization header. Names are case-insensitive.
	Headers map[string]string
}
