// Package server provides the HTTP REST API for the assessment wizard.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abarros/arc-assessment/internal/config"
	"github.com/abarros/arc-assessment/internal/db"
	"github.com/abarros/arc-assessment/internal/pdf"
	"github.com/abarros/arc-assessment/internal/server/middleware"
	"github.com/abarros/arc-assessment/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	store       Store
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	pdfClient   *pdf.Client
	supervisor  *pdf.Supervisor
}

// New creates a new server instance
func New(cfg *config.ServerConfig) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:    database,
		store: database,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.pdfClient = pdf.NewClient(cfg.PDFServiceURL)
	s.supervisor = pdf.NewSupervisor(s.pdfClient, cfg.RendererCommand)

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF rendering can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Everything past registration and login requires a
// Bearer token.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	protected := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	authed := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, protected(handler))
	}

	authed("POST /consent", s.handleConsent)

	authed("POST /assessment/likert", s.handleSaveLikert)
	authed("GET /assessment/likert", s.handleListLikert)
	authed("POST /assessment/evidence", s.handleSaveEvidence)
	authed("GET /assessment/evidence", s.handleListEvidence)
	authed("POST /assessment/ikigai", s.handleSaveIkigai)
	authed("GET /assessment/ikigai", s.handleListIkigai)
	authed("POST /assessment/choices", s.handleSaveChoices)
	authed("GET /assessment/choices", s.handleGetChoices)
	authed("POST /assessment/plan90d", s.handleSavePlan)
	authed("GET /assessment/plan90d", s.handleGetPlan)
	authed("GET /assessment/status", s.handleStatus)
	authed("GET /assessment/full", s.handleFull)
	authed("POST /assessment/submit", s.handleSubmit)

	authed("POST /report/generate", s.handleGenerateReport)
	authed("GET /users/{id}/report.pdf", s.handleDownloadReport)

	authed("DELETE /me/data", s.handleErasure)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.supervisor != nil {
		s.supervisor.Shutdown()
	}
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth reports server, database, and renderer health. The renderer
// being down degrades the report but is not fatal: the wizard itself only
// needs the database.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "ok"
	httpStatus := http.StatusOK
	if err := s.store.Ping(ctx); err != nil {
		log.Printf("[health] database ping failed: %v", err)
		dbStatus = "unreachable"
		httpStatus = http.StatusServiceUnavailable
	}

	rendererStatus := string(s.pdfClient.CheckHealth(ctx).State)

	overall := "ok"
	if httpStatus != http.StatusOK {
		overall = "degraded"
	}
	s.jsonResponse(w, httpStatus, map[string]string{
		"status":   overall,
		"database": dbStatus,
		"renderer": rendererStatus,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For would only be
// safe behind a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
