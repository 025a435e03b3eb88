package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/parisstyle/PS-SalonService/internal/api/handlers"
	"github.com/parisstyle/PS-SalonService/internal/auth"
	"github.com/parisstyle/PS-SalonService/internal/domain"
)

const msgUnauthorized = "se requiere autenticación"

type principalKey struct{}

// Logger is the logging interface used by the middleware
type Logger interface {
	Warn(format string, v ...interface{})
}

// PrincipalFromContext returns the authenticated principal, if any
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Auth verifies the Bearer token and injects the principal into the
// request context. Requests without a valid token get 401.
func Auth(jwtSecret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			principal, err := auth.ParseToken(token, jwtSecret)
			if err != nil {
				logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
