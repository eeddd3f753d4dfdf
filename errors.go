package goShop

import (
	"errors"

	"github.com/MrEthical07/goShop/store"
)

var (
	// ErrGateNotReady is an exported constant or variable used by the session gate.
	ErrGateNotReady = errors.New("gate not initialized")
	// ErrLoginFailed is an exported constant or variable used by the session gate.
	ErrLoginFailed = errors.New("login failed")
	// ErrSessionRevoked is returned by the request wrapper when the server
	// answered 401 and the local session was force-cleared.
	ErrSessionRevoked = errors.New("session revoked by server")
	// ErrForbidden is returned when the server answered 403: the session is
	// valid but lacks permission for the attempted action.
	ErrForbidden = errors.New("permission denied")
	// ErrTokenMissing is an exported constant or variable used by the session gate.
	ErrTokenMissing = errors.New("no authentication token found")
)

// UserMessage maps an error to the single user-facing notice string for
// that error kind. Screens and the route guard consume this mapping
// instead of re-deriving display strings at each call site.
//
//	Docs: docs/errors.md
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrSessionRevoked):
		return "Session expired. Please sign in again."
	case errors.Is(err, ErrForbidden):
		return "You don't have permission to perform this action."
	case errors.Is(err, ErrLoginFailed):
		return "Login failed. Check your credentials and try again."
	case errors.Is(err, ErrTokenMissing), errors.Is(err, store.ErrNoSession):
		return "Please sign in to access the admin dashboard."
	case errors.Is(err, store.ErrStoreUnavailable):
		return "Session storage is unavailable. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
