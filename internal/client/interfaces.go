// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/models"
)

// Client is the public surface of the REST façade: the request pipeline,
// the base URL accessors and the credential accessors.
type Client interface {
	adapter.Requester

	// BaseURL returns the effective backend base URL.
	BaseURL() string
	// SetBaseURL persists a new base URL and re-targets the client. Empty
	// input is ignored.
	SetBaseURL(next string) error

	// Token returns the stored credential, or "" when none is stored.
	Token() string
	// SetToken stores raw; empty input clears the credential.
	SetToken(raw string)
	// ClearToken removes the stored credential.
	ClearToken()
	// InspectToken decodes the stored credential without verifying it.
	InspectToken() (models.TokenInfo, error)

	// Run executes one command and writes its result to out.
	Run(ctx context.Context, args []string, out io.Writer) error

	io.Closer
}
