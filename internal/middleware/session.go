package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mverstraete/tripdash/internal/state"
)

// SessionHeader carries the caller's session ID. Clients mint their own
// UUID; the first request with a given ID creates that session. A missing
// or malformed header falls back to the shared default session, which keeps
// single-user use (curl, one browser tab) zero-configuration.
const SessionHeader = "X-Session-Id"

type sessionCtxKey struct{}

// NewSessionResolver returns a middleware that resolves the request's
// session from the SessionHeader against reg and stores it in the request
// context. The resolved session ID is echoed back on the response so
// clients can learn which session served them.
func NewSessionResolver(reg *state.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.Nil
			if raw := r.Header.Get(SessionHeader); raw != "" {
				if parsed, err := uuid.Parse(raw); err == nil {
					id = parsed
				}
			}
			sess := reg.GetOrCreate(id)
			w.Header().Set(SessionHeader, id.String())

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session stored by NewSessionResolver, or nil when
// the middleware did not run for this request.
func SessionFrom(ctx context.Context) *state.Session {
	sess, _ := ctx.Value(sessionCtxKey{}).(*state.Session)
	return sess
}
