package chi

import (
	"context"
	"net/http"
	"strings"
)

// Principal roles.
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// Principal is the authenticated identity bound to a bearer token.
type Principal struct {
	Role      string
	UserID    string
	PatientID string // set for patient principals
}

type principalCtxKey struct{}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(Principal)
	return p, ok
}

func contextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// BearerAuthMiddleware returns a middleware that validates Bearer tokens and
// attaches the matching principal to the request context. With no principals
// configured authentication is disabled and every request runs as an admin.
func BearerAuthMiddleware(principals map[string]Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(principals) == 0 {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := contextWithPrincipal(r.Context(), Principal{Role: RoleAdmin})
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized,
					codeUnauthorized, "authorization header must use Bearer scheme")
				return
			}

			token := auth[len(bearerPrefix):]
			p, ok := principals[token]
			if !ok {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid api token")
				return
			}

			ctx := contextWithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
