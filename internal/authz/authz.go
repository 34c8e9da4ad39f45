// Package authz resolves the identity of the caller and checks that
// callers only access what they own.
package authz

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthenticated = errors.New("a valid bearer token is required")
	ErrForbidden       = errors.New("you do not have access to this resource")
	ErrNoSecret        = errors.New("no token secret configured")
)

// Identity is the authenticated caller. Subject is the opaque id issued
// by the identity provider and is used as owner of all records.
type Identity struct {
	Subject string
}

// Authorize returns nil when the identity owns the record.
//
// It is called before every read of a single record and before every mutation.
func Authorize(id Identity, owner string) error {
	if id.Subject == "" {
		return ErrUnauthenticated
	}

	if id.Subject != owner {
		return ErrForbidden
	}

	return nil
}

// Verifier verifies HS256 signed JWTs.
type Verifier struct {
	Secret []byte
	Issuer string
}

// Verify parses the token and returns the identity in its sub claim.
func (v Verifier) Verify(token string) (Identity, error) {
	if len(v.Secret) == 0 {
		return Identity{}, ErrNoSecret
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.Secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %s", ErrUnauthenticated, err)
	}

	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: token has no subject", ErrUnauthenticated)
	}

	return Identity{Subject: claims.Subject}, nil
}

// Sign issues a token for subject that expires after ttl.
func (v Verifier) Sign(subject string, ttl time.Duration) (string, error) {
	if len(v.Secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    v.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.Secret)
}
