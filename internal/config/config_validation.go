// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that are invalid
// regardless of defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.BaseURL != "" {
		baseURL, err := NormalizeBaseURL(cfg.Adapter.BaseURL)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
		}
		cfg.Adapter.BaseURL = baseURL
	}

	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendFile:
		if cfg.Storage.Dir == "" {
			return fmt.Errorf("%w: empty storage dir", ErrInvalidStorageConfigs)
		}
	case BackendSQLite:
		if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
			return fmt.Errorf("%w: sqlite backend needs a database file", ErrInvalidStorageConfigs)
		}
	case BackendKeyring:
		if cfg.Storage.KeyringService == "" {
			return fmt.Errorf("%w: empty keyring service", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	return nil
}
