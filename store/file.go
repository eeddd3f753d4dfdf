package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a [Store] backed by a single JSON file on disk, the moral
// equivalent of browser local storage for CLI and daemon deployments:
// it survives process restarts and is cleared as one unit at logout.
//
// Writes go through a temp file plus rename so a crash mid-write never
// leaves a half-written session on disk.
type File struct {
	mu   sync.Mutex
	path string
}

type fileBlob struct {
	Token    string          `json:"admin_token"`
	Profile  json.RawMessage `json:"admin_user,omitempty"`
	Remember bool            `json:"remember_admin,omitempty"`
}

// NewFile creates a file-backed store at path. The file is created on
// the first SetSession; a missing file reads as an empty store.
func NewFile(path string) *File {
	return &File{path: path}
}

// SetSession describes the setsession operation and its observable behavior.
//
// SetSession may return an error when input validation, dependency calls, or security checks fail.
func (f *File) SetSession(_ context.Context, token string, profile *Profile, remember bool) error {
	blob := fileBlob{Token: token, Remember: remember}
	if profile != nil {
		raw, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		blob.Profile = raw
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.writeLocked(data)
}

// Token describes the token operation and its observable behavior.
func (f *File) Token(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	blob, err := f.readLocked()
	if err != nil {
		return "", err
	}
	if blob.Token == "" {
		return "", ErrNoSession
	}
	return blob.Token, nil
}

// Profile returns the cached profile, or (nil, nil) when absent or when
// the stored bytes fail to parse as the expected shape.
func (f *File) Profile(_ context.Context) (*Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	blob, err := f.readLocked()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil, nil
		}
		return nil, err
	}
	return decodeProfile(blob.Profile), nil
}

// Remember describes the remember operation and its observable behavior.
func (f *File) Remember(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	blob, err := f.readLocked()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return false, nil
		}
		return false, err
	}
	return blob.Remember, nil
}

// Clear removes the session file. Idempotent: clearing a store whose
// file does not exist is a no-op.
func (f *File) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (f *File) readLocked() (*fileBlob, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var blob fileBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		// Corrupt state is never partially trusted: an unreadable file
		// reads as no session at all.
		return nil, ErrNoSession
	}
	return &blob, nil
}

func (f *File) writeLocked(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".goshop-session-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
