package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args and returns them as a
// [StructuredConfig]; positional arguments are kept in Args.
//
// Flags:
//
//	-c/-config        json file path with configs
//	-base-url         backend base URL (e.g. "http://host/api")
//	-timeout          request timeout (e.g. "15s")
//	-storage          durable storage backend: file, sqlite, keyring, memory
//	-storage-dir      directory of the file backend
//	-dsn              sqlite database file
//	-keyring-service  keyring service name
//	-fallback-token   credential used before any login
//	-log-path         log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		jsonConfigPath string
		baseURL        string
		requestTimeout time.Duration
		backend        string
		storageDir     string
		dsn            string
		keyringService string
		fallbackToken  string
		logPath        string
	)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&baseURL, "base-url", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&backend, "storage", "", "Storage backend: file, sqlite, keyring, memory")
	fs.StringVar(&storageDir, "storage-dir", "", "File storage directory")
	fs.StringVar(&dsn, "dsn", "", "SQLite database file")
	fs.StringVar(&keyringService, "keyring-service", "", "Keyring service name")
	fs.StringVar(&fallbackToken, "fallback-token", "", "Fallback bearer token")
	fs.StringVar(&logPath, "log-path", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			FallbackToken: fallbackToken,
			LogPath:       logPath,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Backend: backend,
			Dir:     storageDir,
			DB:      DB{DSN: dsn},
			Keyring: Keyring{Service: keyringService},
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}
