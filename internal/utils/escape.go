package utils

import (
	"net/url"
	"strings"
)

// EscapeComponent percent-encodes s so that it can be used as a single path
// segment or cookie value. Unlike [url.QueryEscape] a space becomes "%20".
//
// Example:
//
//	utils.EscapeComponent("a b/c") // "a%20b%2Fc"
func EscapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
