// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from flags, environment variables and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects and configures the durable key-value backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing. Only the flags source sets it.
	Args []string
}

// App holds application-level settings.
type App struct {
	// FallbackToken is the credential seeded into the token store when
	// nothing is persisted yet, and sent when the store is empty.
	// Env: APP_FALLBACK_TOKEN
	FallbackToken string `env:"FALLBACK_TOKEN"`

	// LogPath is the file the client logs to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// BaseURL is the explicit backend base URL (e.g. "http://host/api").
	// When empty the persisted API_BASE override or the compiled-in
	// default is used.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage selects and configures the durable key-value backend.
type Storage struct {
	// Backend is one of "file", "sqlite", "keyring" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the directory used by the file backend.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// DB holds the sqlite backend settings.
	DB DB `envPrefix:"DB_"`

	// Keyring holds the keyring backend settings.
	Keyring Keyring `envPrefix:"KEYRING_"`
}

// DB holds connection settings for the sqlite backend.
type DB struct {
	// DSN is the sqlite database file (e.g. "/home/u/.config/app/kv.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Keyring holds settings for the OS keyring backend.
type Keyring struct {
	// Service is the keyring service name entries are stored under.
	// Env: STORAGE_KEYRING_SERVICE
	Service string `env:"SERVICE"`
}

// GetStructuredConfig loads and merges the configuration from all
// available sources (flags parsed from args, env, JSON).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		build()
}
