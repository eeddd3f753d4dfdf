package internaldefs

import (
	goShop "github.com/MrEthical07/goShop"
)

// CounterDef defines a public type used by goShop APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goShop.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goShop APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goShop.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session gate.
var CounterDefs = []CounterDef{
	{ID: goShop.MetricLoginSuccess, Name: "goshop_login_success_total", Help: "Successful admin login attempts."},
	{ID: goShop.MetricLoginFailure, Name: "goshop_login_failure_total", Help: "Failed admin login attempts."},
	{ID: goShop.MetricSessionSet, Name: "goshop_session_set_total", Help: "Sessions stored after login."},
	{ID: goShop.MetricLogout, Name: "goshop_logout_total", Help: "Explicit logout operations."},
	{ID: goShop.MetricForcedLogout, Name: "goshop_forced_logout_total", Help: "Sessions cleared after a server-side rejection."},
	{ID: goShop.MetricUnauthorized, Name: "goshop_unauthorized_total", Help: "Storefront API requests answered 401."},
	{ID: goShop.MetricForbidden, Name: "goshop_forbidden_total", Help: "Storefront API requests answered 403."},
	{ID: goShop.MetricGuardAllowed, Name: "goshop_guard_allowed_total", Help: "Requests admitted by the route guard."},
	{ID: goShop.MetricGuardRedirect, Name: "goshop_guard_redirect_total", Help: "Requests redirected to sign-in by the route guard."},
}

// HistogramDefs is an exported constant or variable used by the session gate.
var HistogramDefs = []HistogramDef{
	{ID: goShop.MetricRequestLatency, Name: "goshop_request_latency_seconds", Help: "Storefront API request latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the session gate.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the session gate.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
