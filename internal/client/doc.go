// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires configuration, durable storage, the token store, the request
// pipeline and the services into a single [App], and exposes the command
// runner used by cmd/client.
package client
