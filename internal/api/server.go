// ABOUTME: HTTP server and router for the hatchboard API
// ABOUTME: Wires chi middleware, CORS, session resolution, and all routes

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hatchboard/hatchboard/internal/auth"
	"github.com/hatchboard/hatchboard/internal/config"
	"github.com/hatchboard/hatchboard/internal/session"
	"github.com/hatchboard/hatchboard/internal/store"
)

// Server is the hatchboard HTTP API.
type Server struct {
	cfg      *config.Config
	store    store.Store
	sessions session.Store
	auth     *auth.Authenticator
	codec    *auth.CookieCodec
	cookies  auth.CookieSettings
	metrics  *Metrics
	registry *prometheus.Registry
	logger   *slog.Logger
	httpSrv  *http.Server
}

// NewServer wires the API over the given stores.
func NewServer(cfg *config.Config, st store.Store, sessions session.Store) *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		cfg:      cfg,
		store:    st,
		sessions: sessions,
		auth:     auth.NewAuthenticator(st),
		codec:    auth.NewCookieCodec([]byte(cfg.Session.Secret), cfg.Session.TTL),
		cookies: auth.CookieSettings{
			Secure:   cfg.Cookie.Secure,
			SameSite: cfg.SameSiteMode(),
			TTL:      cfg.Session.TTL,
		},
		metrics:  NewMetrics(registry),
		registry: registry,
		logger:   slog.Default().With("component", "api"),
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes builds the router. Exposed for handler tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	resolver := auth.NewResolver(s.codec, s.sessions, s.store)
	r.Use(resolver.Middleware)

	// Public routes
	r.Post("/login", s.handleLogin)
	r.Post("/signup", s.handleSignup)
	r.Get("/auth/check", s.handleAuthCheck)
	r.Post("/newproject", s.handleNewProject)
	r.Get("/project/{id}", s.handleGetProject)
	r.Get("/fetchprojects", s.handleFetchProjects)
	r.Post("/fetchuserprojects", s.handleFetchUserProjects)
	r.Put("/edit/{id}", s.handleUpdateProject)
	r.Post("/getname", s.handleGetName)
	r.Get("/health", s.handleHealth)

	// Session-gated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequirePrincipal)
		r.Post("/logout", s.handleLogout)
		r.Delete("/delete/{id}", s.handleDeleteProject)
		r.Get("/edit/{id}", s.handleGetProjectForEdit)
		r.Post("/messagepost", s.handlePostMessage)
		r.Post("/getmessages", s.handleGetMessages)
	})

	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	return r
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.cfg.Server.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
