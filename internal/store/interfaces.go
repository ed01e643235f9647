// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the client's persisted state: a durable key-value
// store with interchangeable backends (file, sqlite, OS keyring, memory)
// and the bearer-token store built on top of it.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a durable key-value store.
type KeyValueStore interface {
	// Get returns the value stored under key. A missing key yields an
	// error wrapping [ErrNoSuchKey].
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// TokenStore holds the single active bearer credential.
//
// Implementations never fail towards the caller: storage errors are logged
// and swallowed, so reading degrades to "no credential" and writing to a
// no-op.
type TokenStore interface {
	// Get returns the current bare credential, or "" when none is stored.
	Get() string

	// Set strips any leading "Bearer " prefix (any casing) and surrounding
	// whitespace from raw and persists the remainder. An empty remainder
	// is ignored.
	Set(raw string)

	// Clear removes the credential from every location it is mirrored to.
	Clear()
}
