package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-rest-facade/models"
)

// ErrNotJWT is returned by InspectToken for credentials that are not a
// well-formed JWT.
var ErrNotJWT = errors.New("token is not a JWT")

// InspectToken decodes the claims of a bearer credential without verifying
// its signature. It is meant for diagnostics only: the backend is the sole
// authority on whether the token is valid.
//
// The subject is taken from the "sub" claim, falling back to the backend's
// numeric "user" claim. Large numeric ids are kept exact.
//
// Parameters:
//
//	token - the bare credential, without the "Bearer " prefix
//
// Returns:
//
//	models.TokenInfo - subject, algorithm, iat/exp and whether exp has passed
//	error            - wraps ErrNotJWT if the token cannot be decoded
//
// Example usage:
//
//	info, err := utils.InspectToken(tokens.Get())
//	if err == nil && info.Expired {
//	    // ask the user to log in again
//	}
func InspectToken(token string) (models.TokenInfo, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.TokenInfo{}, fmt.Errorf("%w: empty token", ErrNotJWT)
	}

	parsed, _, err := jwt.NewParser(jwt.WithJSONNumber()).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return models.TokenInfo{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.TokenInfo{}, fmt.Errorf("%w: invalid token claims", ErrNotJWT)
	}

	info := models.TokenInfo{Subject: subjectOf(claims)}
	if alg, ok := parsed.Header["alg"].(string); ok {
		info.Algorithm = alg
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = exp.Time.Before(now())
	}

	return info, nil
}

func subjectOf(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}

	switch user := claims["user"].(type) {
	case string:
		return user
	case json.Number:
		return user.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(user)
	}
}
