package store

import (
	"context"
	"errors"
)

// ErrNoSession is returned by read operations when no session is stored.
var ErrNoSession = errors.New("no stored session")

// ErrStoreUnavailable is returned when the storage backend cannot be reached.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Logical storage keys. All backends persist exactly these three values
// and clear them as one unit.
const (
	KeyToken    = "admin_token"
	KeyProfile  = "admin_user"
	KeyRemember = "remember_admin"
)

// Store is the persisted key-value state behind the session gate. It is
// injected into the gate (never accessed as ambient global state) so
// independent sessions can coexist in tests.
//
// Contract notes:
//
//   - SetSession performs no token validation; a syntactically broken
//     token is stored as-is and rejected later by the expiry evaluator.
//   - Profile returns (nil, nil), absent rather than an error, when a
//     stored profile fails to parse. Availability wins over failure for
//     display-only data.
//   - Clear is idempotent: clearing an empty store is a no-op.
//
//	Docs: docs/store.md
type Store interface {
	SetSession(ctx context.Context, token string, profile *Profile, remember bool) error
	Token(ctx context.Context) (string, error)
	Profile(ctx context.Context) (*Profile, error)
	Remember(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}
