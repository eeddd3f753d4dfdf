// Package goShop provides the client-side session machinery for an
// e-commerce admin dashboard backed by an external storefront REST API:
// a persisted token store, a fail-closed token expiry evaluator, and a
// session gate that is the single authority for "is this caller
// authenticated" and "what headers does an authenticated request carry".
//
// The package is designed for concurrent callers: Gate methods are safe
// to call from multiple goroutines after initialization through
// [Builder.Build]. Authentication state is never cached: the gate
// recomputes it from the token store on every call, so login, logout,
// and token expiry are observed at the next decision point without any
// timers or push notification.
//
// # Architecture boundaries
//
// goShop is the public surface. It exposes [Gate], [Builder], [Config],
// audit sinks, and the metrics snapshot types. Collaborators live in
// sub-packages: store (persisted token/profile state), token (expiry
// evaluation), client (authenticated request wrapper and typed API
// client), and middleware (route guard).
//
// # What this package must NOT do
//
//   - Grant access on ambiguous state. A malformed or unparseable token
//     is always treated as expired; the external API remains the final
//     authority via its 401 responses.
//   - Cache the result of [Gate.IsAuthenticated] across calls.
//   - Import any sub-package that re-imports goShop (no import cycles).
package goShop
