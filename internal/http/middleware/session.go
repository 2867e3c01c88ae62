package middleware

import (
	"io"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

// RequireSession rejects requests with 401 while no delivery partner is signed in.
func RequireSession(logger logx.Logger, current func() domain.Session) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if current().Authenticated() {
				next.ServeHTTP(w, r)
				return
			}
			logger.Warn("unauthenticated request",
				logx.String("req_id", chimw.GetReqID(r.Context())),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"sign in as a delivery partner"}`)
		})
	}
}
