package store

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore is a [KeyValueStore] backed by the OS-native credential
// storage (macOS Keychain, Windows Credential Manager, Secret Service). Each
// key is stored as a keyring "user" under a single service name.
type KeyringStore struct {
	service string
}

var _ KeyValueStore = (*KeyringStore)(nil)

// NewKeyringStore creates a KeyringStore for the given service name.
func NewKeyringStore(service string) (*KeyringStore, error) {
	if service == "" {
		return nil, fmt.Errorf("service cannot be empty")
	}
	return &KeyringStore{service: service}, nil
}

// Get implements [KeyValueStore].
func (k *KeyringStore) Get(key string) ([]byte, error) {
	value, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, key)
	}
	if err != nil {
		return nil, fmt.Errorf("keyring get %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set implements [KeyValueStore].
func (k *KeyringStore) Set(key string, value []byte) error {
	if err := keyring.Set(k.service, key, string(value)); err != nil {
		return fmt.Errorf("keyring set %s: %w", key, err)
	}
	return nil
}

// Delete implements [KeyValueStore].
func (k *KeyringStore) Delete(key string) error {
	err := keyring.Delete(k.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %s: %w", key, err)
	}
	return nil
}
