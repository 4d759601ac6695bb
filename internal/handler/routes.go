package handler

import (
	"net/http"

	"github.com/msomdec/atelier/internal/metrics"
	"github.com/msomdec/atelier/internal/service"
)

// Services bundles what the routes need. Store backs the readiness check and Limiter
// throttles the unauthenticated endpoints; either may be nil.
type Services struct {
	Auth      *service.AuthService
	Garments  *service.GarmentService
	Laundry   *service.LaundryService
	Appliance *service.ApplianceService
	Metrics   *metrics.Metrics

	Store        Pinger
	Limiter      *service.RateLimiter
	CookieSecure bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, s Services) {
	authH := NewAuthHandler(s.Auth, s.Limiter, s.CookieSecure)
	careH := NewCareHandler(s.Metrics)
	garmentH := NewGarmentHandler(s.Garments)
	laundryH := NewLaundryHandler(s.Laundry)
	applianceH := NewApplianceHandler(s.Appliance)

	limited := func(h http.HandlerFunc) http.Handler {
		if s.Limiter == nil {
			return h
		}
		return RateLimit(s.Limiter, h)
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(s.Auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz(s.Store))
	mux.Handle("GET /metrics", s.Metrics.Handler())
	mux.Handle("GET /{$}", OptionalAuth(s.Auth, http.HandlerFunc(HandleHome)))

	mux.Handle("POST /api/register", limited(authH.HandleRegister))
	mux.Handle("POST /api/login", limited(authH.HandleLogin))
	mux.HandleFunc("POST /api/logout", authH.HandleLogout)
	mux.Handle("GET /api/me", protected(authH.HandleMe))

	mux.HandleFunc("GET /api/care/symbols", careH.HandleSymbols)
	mux.Handle("POST /api/care/normalize", limited(careH.HandleNormalize))
	mux.HandleFunc("GET /api/care/color", careH.HandleColor)

	mux.Handle("GET /api/garments", protected(garmentH.HandleList))
	mux.Handle("POST /api/garments", protected(garmentH.HandleCreate))
	mux.Handle("GET /api/garments/bins", protected(garmentH.HandleBins))
	mux.Handle("GET /api/garments/{id}", protected(garmentH.HandleGet))
	mux.Handle("PUT /api/garments/{id}", protected(garmentH.HandleUpdate))
	mux.Handle("DELETE /api/garments/{id}", protected(garmentH.HandleDelete))
	mux.Handle("GET /api/garments/{id}/bin", protected(garmentH.HandleBin))

	mux.Handle("GET /api/sessions", protected(laundryH.HandleList))
	mux.Handle("POST /api/sessions", protected(laundryH.HandleCreate))
	mux.Handle("GET /api/sessions/{id}", protected(laundryH.HandleGet))
	mux.Handle("DELETE /api/sessions/{id}", protected(laundryH.HandleDelete))
	mux.Handle("POST /api/sessions/{id}/garments", protected(laundryH.HandleAddGarment))
	mux.Handle("DELETE /api/sessions/{id}/garments/{garmentID}", protected(laundryH.HandleRemoveGarment))
	mux.Handle("POST /api/sessions/{id}/advance", protected(laundryH.HandleAdvance))
	mux.Handle("GET /api/sessions/{id}/plan", protected(laundryH.HandlePlan))

	mux.Handle("GET /api/appliance", protected(applianceH.HandleStatus))
	mux.Handle("POST /api/appliance/reset", protected(applianceH.HandleReset))
}

// Wrap applies the middleware shared by every route.
func Wrap(mux *http.ServeMux, m *metrics.Metrics) http.Handler {
	return SecurityHeaders(RequestLogger(m, mux))
}
