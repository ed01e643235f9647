// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo in the following order, the first non-zero value of a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path taken from -config or CONFIG)
//
// Defaults are applied last by [GetClientConfig]. The backend base URL is
// special: the explicit value from the sources above is combined with the
// override persisted in durable storage by [ResolveBaseURL].
package config
