// Package store provides the persisted session state consumed by the
// goShop gate: the current admin token, the cached admin profile, and
// the remember-me flag.
//
// The three values share one lifecycle: written together at login and
// cleared together at logout, never removed independently. Absence is
// reported with [ErrNoSession], not a panic or a zero value that could
// be mistaken for a credential. No implementation validates token
// format; expiry evaluation belongs to the token package.
//
// Three backends are provided: Memory (single process, tests), File
// (JSON blob on disk, survives restarts), and Redis (shared across
// processes, so a logout in one process is observed by the others on
// their next read, with no push notification).
//
//	Docs: docs/store.md
package store
