package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var body struct {
		ReceiverID string `json:"receiverId"`
		Content    string `json:"content"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	msg, err := s.chat.Send(r.Context(), actor, mux.Vars(r)["id"], body.ReceiverID, body.Content)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.chat.JobMessages(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := s.chat.MarkRead(r.Context(), body.IDs); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	count, err := s.chat.UnreadCount(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"count": count})
}
