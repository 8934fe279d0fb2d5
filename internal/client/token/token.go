// Package token reads Splits credential tokens on the client side.
//
// The backend issues JWTs. The client only decodes the payload to know who is
// signed in and when the session lapses; the signature is NOT verified here.
// That is acceptable solely because the backend re-verifies the token on every
// request — decoded claims must never be treated as authoritative for
// authorization, only for display.
package token

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token cannot be decoded into claims.
// Callers should treat it as "no session" rather than as a user-facing error.
var ErrInvalidToken = errors.New("invalid token")

// now is a test seam for the wall clock.
var now = time.Now

// Claims is the payload of a Splits credential token.
// Claims beyond these are ignored.
type Claims struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	jwt.RegisteredClaims
}

// User is the identity derived from a token.
type User struct {
	ID      string
	Name    string
	Contact string
}

// Decode extracts the claims from the payload segment of tokenString without
// verifying the signature or even the header. Malformed structure, invalid
// base64 and invalid JSON all collapse to ErrInvalidToken.
func Decode(tokenString string) (*Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsExpired reports whether tokenString is unusable: undecodable, missing an
// expiry claim, or past it. A missing or malformed token always counts as
// expired, so callers fail closed.
func IsExpired(tokenString string) bool {
	claims, err := Decode(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return now().UnixMilli() >= claims.ExpiresAt.UnixMilli()
}

// UserFromToken projects the identity fields out of tokenString.
// Returns nil if the token cannot be decoded.
func UserFromToken(tokenString string) *User {
	claims, err := Decode(tokenString)
	if err != nil {
		return nil
	}
	return &User{ID: claims.ID, Name: claims.Name, Contact: claims.Contact}
}
