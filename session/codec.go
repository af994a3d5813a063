// Package session carries per-visitor transient state between requests:
// the wizard's progress and the hand-over of recommendation results to the
// results screen. Nothing here outlives its TTL.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "careerpath-web"

// ErrInvalidToken covers tampered, expired and mis-purposed tokens
var ErrInvalidToken = errors.New("invalid session token")

// Codec signs payloads as HS256 JWTs
type Codec struct {
	secretKey []byte
	now       func() time.Time
}

type claims[T any] struct {
	Payload T `json:"payload"`
	jwt.RegisteredClaims
}

// NewCodec creates a codec keyed by secret
func NewCodec(secret string) *Codec {
	return &Codec{
		secretKey: []byte(secret),
		now:       time.Now,
	}
}

// Encode signs payload for the given purpose, valid for ttl
func Encode[T any](c *Codec, purpose string, payload T, ttl time.Duration) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims[T]{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   purpose,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", purpose, err)
	}
	return signed, nil
}

// Decode verifies a token minted by Encode for the same purpose
func Decode[T any](c *Codec, purpose string, tokenString string) (T, error) {
	var zero T
	parsed := &claims[T]{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(purpose),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	token, err := parser.ParseWithClaims(tokenString, parsed, func(*jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	})
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return zero, ErrInvalidToken
	}
	return parsed.Payload, nil
}
