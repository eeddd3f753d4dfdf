package goShop

import (
	"github.com/MrEthical07/goShop/store"
)

// SessionState is the derived authentication state of the caller. It is
// computed on demand from the token store and the expiry evaluator and
// is never persisted. Caching a boolean next to the token is exactly
// the stale-authentication bug this design avoids.
type SessionState uint8

const (
	// StateUnauthenticated is an exported constant or variable used by the session gate.
	StateUnauthenticated SessionState = iota
	// StateAuthenticated is an exported constant or variable used by the session gate.
	StateAuthenticated
)

// String describes the string operation and its observable behavior.
func (s SessionState) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Profile is the cached admin identity snapshot stored alongside the
// token. It is advisory display data only and must never be used for
// authorization decisions: the token is the credential and the server
// is the authority.
type Profile = store.Profile
