// Package api exposes the identity, job, and chat services over HTTP. It is
// strictly a consumer of those services and holds no business logic of its
// own.
package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"fixify/chat"
	"fixify/identity"
	"fixify/job"
)

// Server bundles the domain services behind an HTTP router.
type Server struct {
	identity *identity.Service
	tokens   *identity.TokenIssuer
	jobs     *job.Registry
	chat     *chat.Log
	logger   *slog.Logger
}

// NewServer wires the services into a Server. A nil logger falls back to a
// JSON logger on stdout.
func NewServer(ids *identity.Service, tokens *identity.TokenIssuer, jobs *job.Registry, chatLog *chat.Log, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Server{
		identity: ids,
		tokens:   tokens,
		jobs:     jobs,
		chat:     chatLog,
		logger:   logger,
	}
}

// Router builds the route table. Dashboard-style views are additionally
// gated by role; everything except login/register requires a session token.
// The CORS handler wraps the router itself so preflight requests are
// answered before method matching can reject them.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware, s.recoveryMiddleware)

	r.HandleFunc("/api/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)

	authed.HandleFunc("/api/auth/logout", s.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/api/auth/me", s.handleMe).Methods(http.MethodGet)
	authed.HandleFunc("/api/profile", s.handleUpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/api/profile/location", s.handleUpdateLocation).Methods(http.MethodPut)

	authed.HandleFunc("/api/jobs", s.requireRole(identity.RoleUser, s.handleCreateJob)).Methods(http.MethodPost)
	authed.HandleFunc("/api/jobs/mine", s.requireRole(identity.RoleUser, s.handlePostings)).Methods(http.MethodGet)
	authed.HandleFunc("/api/jobs/assigned", s.requireRole(identity.RoleWorker, s.handleAssignments)).Methods(http.MethodGet)
	authed.HandleFunc("/api/jobs/nearby", s.requireRole(identity.RoleWorker, s.handleNearby)).Methods(http.MethodGet)
	authed.HandleFunc("/api/jobs/{id}", s.handleGetJob).Methods(http.MethodGet)
	authed.HandleFunc("/api/jobs/{id}/status", s.handleTransition).Methods(http.MethodPost)

	authed.HandleFunc("/api/jobs/{id}/messages", s.handleListMessages).Methods(http.MethodGet)
	authed.HandleFunc("/api/jobs/{id}/messages", s.handleSendMessage).Methods(http.MethodPost)
	authed.HandleFunc("/api/jobs/{id}/unread", s.handleUnreadCount).Methods(http.MethodGet)
	authed.HandleFunc("/api/messages/read", s.handleMarkRead).Methods(http.MethodPost)

	return corsMiddleware(r)
}
