package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artmarket-partner-console/internal/http/handlers"
	obs "artmarket-partner-console/internal/http/middleware"
	"artmarket-partner-console/internal/logx"
)

// Routes groups the handlers and guards mounted by New.
type Routes struct {
	Logger     logx.Logger
	Base       *handlers.Handlers
	Session    *handlers.SessionHandler
	Deliveries *handlers.DeliveriesHandler
	Requests   *handlers.RequestsHandler
	History    *handlers.HistoryHandler

	// Auth guards every /deliveries route. Nil lets everything through.
	Auth func(http.Handler) http.Handler
	// Throttle guards the mutating delivery actions. Nil lets everything through.
	Throttle func(http.Handler) http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(rt Routes) http.Handler {
	if rt.Logger == nil {
		rt.Logger = logx.Nop()
	}
	auth := orPass(rt.Auth)
	throttle := orPass(rt.Throttle)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(obs.Observability(rt.Logger))

	r.Get("/ping", rt.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(rt.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/session", rt.Session.Get)
	r.Put("/session", rt.Session.Login)
	r.With(auth).Delete("/session", rt.Session.Logout)

	r.Route("/deliveries", func(r chi.Router) {
		r.Use(auth)

		r.Get("/active", rt.Deliveries.List)
		r.With(throttle).Post("/active/{id}/status", rt.Deliveries.UpdateStatus)
		r.With(throttle).Post("/active/{id}/next", rt.Deliveries.Next)

		r.Get("/requests", rt.Requests.List)
		r.Post("/requests/refresh", rt.Requests.Refresh)
		r.With(throttle).Post("/requests/{id}/accept", rt.Requests.Accept)

		r.Get("/history", rt.History.List)
		r.Post("/history/sort", rt.History.ToggleSort)
	})

	r.NotFound(http.HandlerFunc(rt.Base.NotFound))

	return r
}

func orPass(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw != nil {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
}
