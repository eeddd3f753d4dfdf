package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by ExpiresAt when the token decodes but carries
// no exp claim. IsExpired treats it like any other failure: expired.
var ErrNoExpiry = errors.New("token has no exp claim")

var parser = jwt.NewParser()

// Decode splits a compact JWT into its claims without verifying the
// signature. The signature segment is ignored entirely; callers get the
// payload the server put there, trusted only for scheduling purposes.
func Decode(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresAt returns the exp claim of raw as a wall-clock time.
//
// ExpiresAt may return an error when the token is malformed, has no exp
// claim, or its exp claim is not a number.
func ExpiresAt(raw string) (time.Time, error) {
	claims, err := Decode(raw)
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// IsExpired reports whether raw should be treated as expired right now.
//
// Fail closed: any decode failure, a missing exp, or a malformed exp all
// count as expired. A token is current only when its exp is strictly in
// the future.
//
//	Performance: one base64 decode plus one JSON decode, no crypto.
func IsExpired(raw string) bool {
	return IsExpiredAt(raw, time.Now())
}

// IsExpiredAt is IsExpired evaluated against an explicit instant. A token
// whose exp equals now exactly is already expired.
func IsExpiredAt(raw string, now time.Time) bool {
	exp, err := ExpiresAt(raw)
	if err != nil {
		return true
	}
	return !exp.After(now)
}
