package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-process [Store]. It is the default backend and the one
// used by tests; state does not survive process restarts.
type Memory struct {
	mu       sync.RWMutex
	hasToken bool
	token    string
	profile  []byte
	remember bool
}

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{}
}

// SetSession describes the setsession operation and its observable behavior.
//
// SetSession does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Memory) SetSession(_ context.Context, token string, profile *Profile, remember bool) error {
	var raw []byte
	if profile != nil {
		encoded, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		raw = encoded
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.hasToken = true
	m.token = token
	m.profile = raw
	m.remember = remember
	return nil
}

// Token describes the token operation and its observable behavior.
func (m *Memory) Token(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasToken {
		return "", ErrNoSession
	}
	return m.token, nil
}

// Profile returns the cached profile, or (nil, nil) when none is stored
// or the stored bytes fail to parse.
func (m *Memory) Profile(_ context.Context) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return decodeProfile(m.profile), nil
}

// Remember describes the remember operation and its observable behavior.
func (m *Memory) Remember(_ context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.remember, nil
}

// Clear removes all three values. Idempotent.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hasToken = false
	m.token = ""
	m.profile = nil
	m.remember = false
	return nil
}

func decodeProfile(raw []byte) *Profile {
	if len(raw) == 0 {
		return nil
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}
