package users

import (
	"log/slog"
	"net/http"

	"github.com/codepromptu/server/pkg/handlers"
)

// Authenticator returns middleware that resolves optional basic credentials.
// Requests without an Authorization header proceed in the anonymous scope;
// requests with credentials must authenticate or are rejected with 401.
func Authenticator(sys System, logger *slog.Logger) func(http.Handler) http.Handler {
	authLogger := logger.With("middleware", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := sys.Authenticate(r.Context(), username, password)
			if err != nil {
				handlers.RespondError(w, authLogger, MapHTTPStatus(err), err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
