// Package middleware exposes the HTTP route guard that fronts admin
// screens with goShop.Gate session checks.
//
// # Guards
//
//   - [Guard] re-evaluates authentication per request and redirects
//     unauthenticated callers to the sign-in route, preserving the
//     originally requested path in the from query parameter.
//
// The sign-in route itself must never be wrapped by [Guard]: a guarded
// sign-in page would redirect to itself forever.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Gate calls. It does NOT
// implement authentication logic itself; all decisions are delegated to
// Gate.IsAuthenticated.
//
// # What this package must NOT do
//
//   - Parse tokens directly (delegates to the Gate).
//   - Touch the token store (the Gate handles I/O).
//   - Cache authentication results between requests.
package middleware
