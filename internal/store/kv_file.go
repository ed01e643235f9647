package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rogpeppe/go-internal/lockedfile"
)

// FileStore is a [KeyValueStore] keeping one file per key inside a
// directory. Reads and writes go through lockedfile so that several client
// processes can share the directory.
type FileStore struct {
	basedir string
}

var _ KeyValueStore = (*FileStore)(nil)

// NewFileStore creates basedir with 0700 permissions if needed and returns
// a FileStore rooted there.
func NewFileStore(basedir string) (*FileStore, error) {
	return newFileStore(basedir, os.MkdirAll)
}

type osMkdirAll func(path string, perm fs.FileMode) error

func newFileStore(basedir string, mkdir osMkdirAll) (*FileStore, error) {
	if basedir == "" {
		return nil, errors.New("file store directory cannot be empty")
	}
	if err := mkdir(basedir, 0700); err != nil {
		return nil, fmt.Errorf("create file store dir: %w", err)
	}
	return &FileStore{basedir: basedir}, nil
}

func (s *FileStore) filename(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.basedir, key), nil
}

// Get implements [KeyValueStore].
func (s *FileStore) Get(key string) ([]byte, error) {
	name, err := s.filename(key)
	if err != nil {
		return nil, err
	}

	data, err := lockedfile.Read(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Set implements [KeyValueStore].
func (s *FileStore) Set(key string, value []byte) error {
	name, err := s.filename(key)
	if err != nil {
		return err
	}

	if err = lockedfile.Write(name, bytes.NewReader(value), 0600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete implements [KeyValueStore].
func (s *FileStore) Delete(key string) error {
	name, err := s.filename(key)
	if err != nil {
		return err
	}

	if err = os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
