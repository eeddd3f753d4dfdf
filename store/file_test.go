package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewFile(path)
	profile := &Profile{Username: "irishe", Name: "Irishe Admin", Email: "admin@irishe.example"}
	if err := first.SetSession(ctx, "h.p.s", profile, true); err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}

	// A fresh instance over the same path is the "page reload" case.
	second := NewFile(path)
	token, err := second.Token(ctx)
	if err != nil || token != "h.p.s" {
		t.Fatalf("Token after reopen: got (%q, %v)", token, err)
	}
	got, err := second.Profile(ctx)
	if err != nil || got == nil || *got != *profile {
		t.Fatalf("Profile after reopen: got (%+v, %v)", got, err)
	}
}

func TestFileCorruptBlobReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s := NewFile(path)
	if _, err := s.Token(ctx); err != ErrNoSession {
		t.Fatalf("Token on corrupt file: got %v, want ErrNoSession", err)
	}
	profile, err := s.Profile(ctx)
	if err != nil || profile != nil {
		t.Fatalf("Profile on corrupt file: got (%v, %v), want (nil, nil)", profile, err)
	}
}

func TestFileCorruptProfileDegradesToAbsentProfile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	// Valid blob, unparseable profile shape: token stays readable,
	// profile degrades to absent.
	blob := `{"admin_token":"h.p.s","admin_user":"not-an-object","remember_admin":true}`
	if err := os.WriteFile(path, []byte(blob), 0o600); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	s := NewFile(path)
	token, err := s.Token(ctx)
	if err != nil || token != "h.p.s" {
		t.Fatalf("Token: got (%q, %v)", token, err)
	}
	profile, err := s.Profile(ctx)
	if err != nil || profile != nil {
		t.Fatalf("Profile: got (%v, %v), want (nil, nil)", profile, err)
	}
}

func TestFileSessionFilePermissions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	s := NewFile(path)
	if err := s.SetSession(ctx, "h.p.s", nil, false); err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat session file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("session file permissions: got %o, want 600", perm)
	}
}
