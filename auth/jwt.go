// Package auth issues and verifies the session tokens and password hashes
// used by the API. Tokens are self-contained HS256 JWTs carrying the
// username as subject; there is no revocation list, validity is purely a
// function of signature and expiry.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the fixed session window for issued tokens.
const TokenValidity = 30 * time.Minute

// Verification failures are distinguishable for callers and tests, but the
// HTTP layer collapses all of them into a single unauthorized response.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenInvalid          = errors.New("token is invalid")
)

// timeNow is swapped out in tests to walk the clock across the expiry
// boundary.
var timeNow = time.Now

// GenerateToken signs a token asserting subject=username, valid for the
// given duration from now.
func GenerateToken(username string, secret []byte, validity time.Duration) (string, error) {
	now := timeNow()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	})
	return token.SignedString(secret)
}

// VerifyToken checks signature and expiry and returns the subject username.
func VerifyToken(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalidSignature
		}
		return secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return timeNow() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenInvalidSignature
		default:
			return "", ErrTokenInvalid
		}
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
