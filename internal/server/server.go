/*
Package server implements the application's network transport layer.
It exposes the nutrition conversation over JSON and WebSocket endpoints
and maps each browser to its in-memory session.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"NutriAssist/internal/config"
	"NutriAssist/internal/session"
	"NutriAssist/internal/utility"
	"github.com/gorilla/sessions"
)

const (
	cookieName   = "nutriassist_session"
	cookieIDKey  = "session_id"
	messageBurst = 10
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	cfg *config.Config

	// sessions owns every live conversation.
	sessions *session.Manager

	// store signs the cookie that remembers a browser's session id.
	store *sessions.CookieStore

	// hub fans profile updates and replies out to open sockets.
	hub *utility.Hub

	ipLimiter *utility.IPRateLimiter

	startedAt time.Time
}

// New wires a Server around an existing session registry.
func New(cfg *config.Config, manager *session.Manager) *Server {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	return &Server{
		port:      cfg.Port,
		cfg:       cfg,
		sessions:  manager,
		store:     store,
		hub:       utility.NewHub(),
		ipLimiter: utility.NewIPRateLimiter(cfg.IPMessagesPerMin, messageBurst),
		startedAt: time.Now(),
	}
}

// NewServer returns a configured *http.Server for the service.
func NewServer(cfg *config.Config, manager *session.Manager) *http.Server {
	newApp := New(cfg, manager)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", newApp.port),
		Handler:      newApp.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute, // up to three completion calls plus backoff
	}
}
