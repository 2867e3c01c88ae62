package ratelimit

import (
	"io"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

// Middleware rejects callers that exceed their Limiter budget with 429.
type Middleware struct {
	logger  logx.Logger
	denied  prometheus.Counter
	limiter Limiter
	key     KeyFunc
}

// New creates a Middleware. A nil limiter allows everything and a nil key
// identifies callers by client IP.
func New(logger logx.Logger, denied prometheus.Counter, limiter Limiter, key KeyFunc) *Middleware {
	if logger == nil {
		logger = logx.Nop()
	}
	if limiter == nil {
		limiter = NopLimiter{}
	}
	if key == nil {
		key = ClientIP
	}
	return &Middleware{logger: logger, denied: denied, limiter: limiter, key: key}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.key(r)
			if m.limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			if m.denied != nil {
				m.denied.Inc()
			}
			m.logger.Warn("partner action throttled",
				logx.String("key", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				m.logger.Debug("throttle response write failed", logx.Err(err))
			}
		})
	}
}

// ClientIP identifies the caller by remote address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// ByPartner identifies the caller by the signed-in partner, falling back to
// client IP when nobody is signed in.
func ByPartner(current func() domain.Session) KeyFunc {
	return func(r *http.Request) string {
		if s := current(); s.Authenticated() && s.UserID != "" {
			return "partner:" + s.UserID
		}
		return "ip:" + ClientIP(r)
	}
}
