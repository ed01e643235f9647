// Package utils provides general-purpose helpers used across the client:
// the cookie-aware HTTP client, the REST path builder with its argument
// normalisers, percent-encoding, JWT inspection and request id generation.
package utils
