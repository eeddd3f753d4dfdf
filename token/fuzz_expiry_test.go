package token

import (
	"testing"
	"time"
)

// FuzzIsExpiredAt exercises expiry evaluation with arbitrary token strings.
// Goal: no panics; anything unreadable must evaluate as expired.
func FuzzIsExpiredAt(f *testing.F) {
	f.Add("")
	f.Add("not.a.jwt")
	f.Add("a.b")
	f.Add("a.b.c.d")
	f.Add("eyJhbGciOiJIUzI1NiJ9.eyJleHAiOjE3MDAwMDAwMDB9.c2ln")
	f.Add("eyJhbGciOiJub25lIn0.eyJleHAiOiJzb29uIn0.")
	f.Add("eyJhbGciOiJIUzI1NiJ9.bm90IGpzb24.c2ln")

	now := time.Unix(1_700_000_000, 0)

	f.Fuzz(func(t *testing.T, input string) {
		// Must not panic for any input.
		expired := IsExpiredAt(input, now)

		// Anything that fails to decode must read as expired; a token
		// reported current must therefore carry a parseable future exp.
		if !expired {
			exp, err := ExpiresAt(input)
			if err != nil {
				t.Fatalf("token reported current but ExpiresAt failed: %v", err)
			}
			if !exp.After(now) {
				t.Fatalf("token reported current with exp %v not after %v", exp, now)
			}
		}
	})
}
