package goShop

import (
	"context"
	"net/http"
	"time"

	"github.com/MrEthical07/goShop/store"
	"github.com/MrEthical07/goShop/token"
)

// Gate defines a public type used by goShop APIs.
//
// Gate instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// The Gate is the single source of truth for "is an admin signed in".
// Authentication status is never cached: every query re-reads the token
// store and re-evaluates expiry, so an expired or cleared session is
// reflected on the very next call.
type Gate struct {
	config  Config
	store   store.Store
	audit   *auditDispatcher
	metrics *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (g *Gate) Close() {
	if g == nil {
		return
	}
	if g.audit != nil {
		g.audit.Close()
	}
}

// SignInPath returns the configured sign-in route. It is the redirect
// target for forced logouts and guard denials.
func (g *Gate) SignInPath() string {
	if g == nil {
		return "/signin"
	}
	return g.config.Gate.SignInPath
}

/*
====================================
SESSION STATE
====================================
*/

// IsAuthenticated reports whether a current, unexpired session token is
// stored. It is recomputed on every call.
//
// Fail closed: a store read error, a missing token, and an unreadable or
// expired token all report false.
func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	if g == nil {
		return false
	}
	raw, err := g.store.Token(ctx)
	if err != nil {
		return false
	}
	return !token.IsExpired(raw)
}

// State describes the state operation and its observable behavior.
func (g *Gate) State(ctx context.Context) SessionState {
	if g.IsAuthenticated(ctx) {
		return StateAuthenticated
	}
	return StateUnauthenticated
}

// AuthHeaders returns the headers every storefront API request carries.
// Content-Type is always set; Authorization is attached only while an
// unexpired token is stored, so requests never go out with credentials
// the server would reject anyway.
func (g *Gate) AuthHeaders(ctx context.Context) http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	if g == nil {
		return headers
	}
	raw, err := g.store.Token(ctx)
	if err != nil || token.IsExpired(raw) {
		return headers
	}

	headers.Set("Authorization", "Bearer "+raw)
	return headers
}

// Token returns the stored session token regardless of expiry, or
// [store.ErrNoSession] when none is stored.
func (g *Gate) Token(ctx context.Context) (string, error) {
	if g == nil {
		return "", ErrGateNotReady
	}
	return g.store.Token(ctx)
}

// Profile returns the cached admin profile, or (nil, nil) when absent.
func (g *Gate) Profile(ctx context.Context) (*store.Profile, error) {
	if g == nil {
		return nil, ErrGateNotReady
	}
	return g.store.Profile(ctx)
}

// RememberMe describes the rememberme operation and its observable behavior.
func (g *Gate) RememberMe(ctx context.Context) (bool, error) {
	if g == nil {
		return false, ErrGateNotReady
	}
	return g.store.Remember(ctx)
}

/*
====================================
SESSION MUTATION
====================================
*/

// SetSession persists a fresh session after a successful login. The token
// is stored as received; expiry is evaluated lazily at read time.
func (g *Gate) SetSession(ctx context.Context, raw string, profile *store.Profile, remember bool) error {
	if g == nil {
		return ErrGateNotReady
	}
	if raw == "" {
		return ErrTokenMissing
	}

	if err := g.store.SetSession(ctx, raw, profile, remember); err != nil {
		return err
	}

	g.metricInc(MetricSessionSet)

	username := ""
	if profile != nil {
		username = profile.Username
	}
	g.Audit(ctx, AuditEvent{
		EventType: AuditSessionSet,
		Username:  username,
		Success:   true,
	})

	return nil
}

// Logout clears the session. Idempotent: logging out with no session
// stored succeeds and leaves the store empty.
func (g *Gate) Logout(ctx context.Context) error {
	if g == nil {
		return ErrGateNotReady
	}

	username := g.storedUsername(ctx)
	if err := g.store.Clear(ctx); err != nil {
		return err
	}

	g.metricInc(MetricLogout)
	g.Audit(ctx, AuditEvent{
		EventType: AuditLogout,
		Username:  username,
		Success:   true,
	})

	return nil
}

// ForceLogout clears the session in response to a server-side rejection,
// typically a 401 on an authenticated request. reason lands in the audit
// trail, not in any user-facing surface.
func (g *Gate) ForceLogout(ctx context.Context, reason string) error {
	if g == nil {
		return ErrGateNotReady
	}

	username := g.storedUsername(ctx)
	if err := g.store.Clear(ctx); err != nil {
		return err
	}

	g.metricInc(MetricForcedLogout)
	g.Audit(ctx, AuditEvent{
		EventType: AuditForcedLogout,
		Username:  username,
		Success:   true,
		Error:     reason,
	})

	return nil
}

func (g *Gate) storedUsername(ctx context.Context) string {
	profile, err := g.store.Profile(ctx)
	if err != nil || profile == nil {
		return ""
	}
	return profile.Username
}

/*
====================================
OBSERVABILITY
====================================
*/

// Audit emits an event through the configured dispatcher. Timestamp, IP,
// and request ID are stamped from ctx when the event leaves them empty.
// No-op when auditing is disabled.
func (g *Gate) Audit(ctx context.Context, event AuditEvent) {
	if g == nil || g.audit == nil {
		return
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.IP == "" {
		event.IP = clientIPFromContext(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = RequestIDFromContext(ctx)
	}

	g.audit.Emit(ctx, event)
}

// RecordGuardRedirect counts and audits a route guard denial. from is the
// originally requested path preserved for post-login return.
func (g *Gate) RecordGuardRedirect(ctx context.Context, from string) {
	if g == nil {
		return
	}
	g.metricInc(MetricGuardRedirect)
	g.Audit(ctx, AuditEvent{
		EventType: AuditGuardRedirect,
		Success:   false,
		Metadata:  map[string]string{"from": from},
	})
}

// Metrics returns the gate's counter set for collaborating packages.
func (g *Gate) Metrics() *Metrics {
	if g == nil {
		return nil
	}
	return g.metrics
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (g *Gate) MetricsSnapshot() MetricsSnapshot {
	if g == nil || g.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return g.metrics.Snapshot()
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (g *Gate) AuditDropped() uint64 {
	if g == nil || g.audit == nil {
		return 0
	}
	return g.audit.Dropped()
}

func (g *Gate) metricInc(id MetricID) {
	if g == nil || g.metrics == nil {
		return
	}
	g.metrics.Inc(id)
}
