package middleware

import (
	"context"
	"net/http"
	"net/url"

	goShop "github.com/MrEthical07/goShop"
	"github.com/MrEthical07/goShop/store"
)

type profileContextKey struct{}

// ProfileFromContext returns the admin profile injected by [Guard] for
// the current request, when one was cached at login.
func ProfileFromContext(ctx context.Context) (*store.Profile, bool) {
	profile, ok := ctx.Value(profileContextKey{}).(*store.Profile)
	return profile, ok
}

// Guard wraps admin handlers with a per-request session check. The check
// is never cached: each request re-reads the store and re-evaluates token
// expiry, so a session that expired a second ago is turned away now.
//
// Unauthenticated requests get a 303 redirect to the gate's sign-in path
// with the requested path preserved as ?from=, mirroring the forced
// logout redirect of the request wrapper.
func Guard(gate *goShop.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if gate == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			if !gate.IsAuthenticated(ctx) {
				gate.RecordGuardRedirect(ctx, r.URL.RequestURI())
				http.Redirect(w, r, redirectTarget(gate.SignInPath(), r), http.StatusSeeOther)
				return
			}

			gate.Metrics().Inc(goShop.MetricGuardAllowed)

			if profile, err := gate.Profile(ctx); err == nil && profile != nil {
				ctx = context.WithValue(ctx, profileContextKey{}, profile)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func redirectTarget(signInPath string, r *http.Request) string {
	return signInPath + "?from=" + url.QueryEscape(r.URL.RequestURI())
}
