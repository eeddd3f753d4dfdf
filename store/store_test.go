package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newBackends(t *testing.T) map[string]Store {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"file":   NewFile(filepath.Join(t.TempDir(), "session.json")),
		"redis":  NewRedis(rdb, "gst"),
	}
}

func TestEmptyStoreReadsAsAbsent(t *testing.T) {
	ctx := context.Background()

	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Token(ctx); err != ErrNoSession {
				t.Fatalf("Token on empty store: got %v, want ErrNoSession", err)
			}
			profile, err := s.Profile(ctx)
			if err != nil || profile != nil {
				t.Fatalf("Profile on empty store: got (%v, %v), want (nil, nil)", profile, err)
			}
			remember, err := s.Remember(ctx)
			if err != nil || remember {
				t.Fatalf("Remember on empty store: got (%v, %v), want (false, nil)", remember, err)
			}
		})
	}
}

func TestSetSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	profile := &Profile{Username: "irishe", Name: "Irishe Admin", Email: "admin@irishe.example"}

	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.SetSession(ctx, "header.payload.sig", profile, true); err != nil {
				t.Fatalf("SetSession failed: %v", err)
			}

			token, err := s.Token(ctx)
			if err != nil || token != "header.payload.sig" {
				t.Fatalf("Token round trip: got (%q, %v)", token, err)
			}

			got, err := s.Profile(ctx)
			if err != nil {
				t.Fatalf("Profile failed: %v", err)
			}
			if got == nil || *got != *profile {
				t.Fatalf("Profile round trip: got %+v, want %+v", got, profile)
			}

			remember, err := s.Remember(ctx)
			if err != nil || !remember {
				t.Fatalf("Remember round trip: got (%v, %v)", remember, err)
			}
		})
	}
}

func TestSetSessionWithoutProfile(t *testing.T) {
	ctx := context.Background()

	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.SetSession(ctx, "t.t.t", nil, false); err != nil {
				t.Fatalf("SetSession failed: %v", err)
			}
			profile, err := s.Profile(ctx)
			if err != nil || profile != nil {
				t.Fatalf("Profile: got (%v, %v), want (nil, nil)", profile, err)
			}
		})
	}
}

func TestSetSessionOverwritesPreviousProfile(t *testing.T) {
	ctx := context.Background()

	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			first := &Profile{Username: "a", Name: "A", Email: "a@example.com"}
			if err := s.SetSession(ctx, "t1.t.t", first, true); err != nil {
				t.Fatalf("SetSession failed: %v", err)
			}
			// Second login without profile must not leave the first
			// profile dangling next to the new token.
			if err := s.SetSession(ctx, "t2.t.t", nil, false); err != nil {
				t.Fatalf("SetSession failed: %v", err)
			}

			profile, err := s.Profile(ctx)
			if err != nil || profile != nil {
				t.Fatalf("Profile after overwrite: got (%v, %v), want (nil, nil)", profile, err)
			}
			remember, err := s.Remember(ctx)
			if err != nil || remember {
				t.Fatalf("Remember after overwrite: got (%v, %v), want (false, nil)", remember, err)
			}
		})
	}
}

func TestClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	profile := &Profile{Username: "irishe", Name: "Irishe Admin", Email: "admin@irishe.example"}

	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.SetSession(ctx, "h.p.s", profile, true); err != nil {
				t.Fatalf("SetSession failed: %v", err)
			}

			if err := s.Clear(ctx); err != nil {
				t.Fatalf("first Clear failed: %v", err)
			}
			if err := s.Clear(ctx); err != nil {
				t.Fatalf("second Clear failed: %v", err)
			}

			if _, err := s.Token(ctx); err != ErrNoSession {
				t.Fatalf("Token after Clear: got %v, want ErrNoSession", err)
			}
			got, err := s.Profile(ctx)
			if err != nil || got != nil {
				t.Fatalf("Profile after Clear: got (%v, %v), want (nil, nil)", got, err)
			}
		})
	}
}

func TestClearOnEmptyStoreIsNoOp(t *testing.T) {
	ctx := context.Background()

	for name, s := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear on empty store: %v", err)
			}
		})
	}
}
