package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"fixify/job"
)

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var params job.CreateParams
	if !decodeBody(w, r, &params) {
		return
	}

	created, err := s.jobs.Create(r.Context(), actor, params)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	j, err := s.jobs.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, j)
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var body struct {
		Status job.Status `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.jobs.Transition(r.Context(), actor, mux.Vars(r)["id"], body.Status)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handlePostings(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	jobs, err := s.jobs.Postings(r.Context(), actor)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleAssignments(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	jobs, err := s.jobs.Assignments(r.Context(), actor)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleNearby(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	jobs, err := s.jobs.Nearby(r.Context(), actor)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}
