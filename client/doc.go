// Package client is the typed storefront API client used by the admin
// dashboard. Every request except login flows through a single wrapper
// that attaches session headers from the gate and enforces one policy
// for server-side session rejection:
//
//   - 401 clears the local session, fires the forced-logout handler, and
//     surfaces as ErrSessionRevoked. The request is never retried.
//   - 403 leaves the session intact and surfaces as ErrForbidden; the
//     admin is signed in but not allowed to do that.
//
// Login deliberately bypasses the wrapper: a wrong password is a 401
// too, and it must not wipe whatever session might already exist.
package client
