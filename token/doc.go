// Package token inspects admin session tokens without verifying them.
//
// The session gate is a pure client of the storefront API: it never holds
// the signing key, so it cannot and must not validate signatures. The only
// question this package answers is "has this token already expired", so the
// gate can stop sending credentials the server would reject anyway. The
// server remains the authority on token validity.
//
// Every helper here fails closed. A token that cannot be decoded, carries
// no exp claim, or carries a non-numeric exp claim is reported as expired.
package token
