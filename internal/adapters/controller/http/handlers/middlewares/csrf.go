package middlewares

import (
	"net/http"

	"filippo.io/csrf/gorilla"
	"github.com/go-chi/cors"

	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/response"
)

// CSRF rejects cross-origin state-changing requests using Fetch metadata.
// trustedOrigins are host[:port] values allowed to call from a browser.
func (h Handler) CSRF(authKey []byte, trustedOrigins []string) func(http.Handler) http.Handler {
	opts := []csrf.Option{
		csrf.ErrorHandler(http.HandlerFunc(h.csrfError)),
	}
	if len(trustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(trustedOrigins))
	}
	return csrf.Protect(authKey, opts...)
}

func (h Handler) csrfError(w http.ResponseWriter, r *http.Request) {
	reason := "unknown"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	h.logger.Warnw("CSRF validation failed",
		"reason", reason,
		"method", r.Method,
		"path", r.URL.Path,
		"origin", r.Header.Get("Origin"),
	)
	response.Error(w, http.StatusForbidden, "cross-origin request rejected")
}

// CORS allows the configured frontend origins to call the API with
// credentials. With no origins it is a no-op.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
