// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"

	"abbed/internal/app"
	"abbed/internal/metrics"
)

// Services bundles the application services the HTTP adapter drives.
type Services struct {
	Weight    *app.WeightService
	Profile   *app.ProfileService
	Dashboard *app.DashboardService
	Charts    *app.ChartsService
	Auth      *app.AuthService
}

// OIDCConfig configures single sign-on. Provider is only consulted on the
// callback to verify the id token.
type OIDCConfig struct {
	Enabled      bool
	OAuth2Config *oauth2.Config
	Provider     *oidc.Provider
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	weight     *app.WeightService
	profile    *app.ProfileService
	dashboard  *app.DashboardService
	charts     *app.ChartsService
	authSvc    *app.AuthService
	webDir     string
	oidcConfig OIDCConfig

	metrics  *metrics.Manager
	gatherer prometheus.Gatherer

	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(svc Services, webDir string) *Server {
	return &Server{
		weight:    svc.Weight,
		profile:   svc.Profile,
		dashboard: svc.Dashboard,
		charts:    svc.Charts,
		authSvc:   svc.Auth,
		webDir:    webDir,
	}
}

// WithOIDC enables the SSO endpoints.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithMetrics records request metrics on m and serves g on /metrics.
func (s *Server) WithMetrics(m *metrics.Manager, g prometheus.Gatherer) *Server {
	s.metrics = m
	s.gatherer = g
	return s
}

// WithoutAuth disables authentication; every request acts as localUser.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("GET /config", s.handleConfig)

	api.HandleFunc("POST /auth/login", s.handleLogin)
	api.HandleFunc("POST /auth/logout", s.handleLogout)
	api.HandleFunc("POST /auth/register", s.handleRegister)
	api.HandleFunc("POST /auth/setup", s.handleSetupUser)
	api.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	authed := func(h http.HandlerFunc) http.Handler { return s.authMiddleware(h) }

	api.Handle("GET /weights", authed(s.handleListWeights))
	api.Handle("POST /weights", authed(s.handleCreateWeight))
	api.Handle("POST /weights/undo-last", authed(s.handleUndoLastWeight))
	api.Handle("PUT /weights/{id}", authed(s.handleUpdateWeight))
	api.Handle("DELETE /weights/{id}", authed(s.handleDeleteWeight))

	api.Handle("GET /profile", authed(s.handleGetProfile))
	api.Handle("PUT /profile", authed(s.handleUpdateProfile))

	api.Handle("GET /dashboard", authed(s.handleDashboard))
	api.Handle("GET /charts/weight", authed(s.handleChartsWeight))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if s.gatherer != nil {
		root.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(s.metricsMiddleware(s.recoverMiddleware(withNoCache(root))))
}
