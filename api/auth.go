package api

import (
	"net/http"

	"fixify/geo"
	"fixify/identity"
)

type sessionResponse struct {
	Token string         `json:"token"`
	User  identity.Actor `json:"user"`
}

// publicActor strips server-only fields before an actor leaves the API.
func publicActor(a identity.Actor) identity.Actor {
	a.SecretHash = ""
	return a
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string        `json:"name"`
		Email    string        `json:"email"`
		Password string        `json:"password"`
		UserType identity.Role `json:"userType"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	sess, err := s.identity.Register(r.Context(), body.Name, body.Email, body.Password, body.UserType)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, sessionResponse{Token: sess.Token, User: publicActor(sess.Actor)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string        `json:"email"`
		Password string        `json:"password"`
		UserType identity.Role `json:"userType"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	sess, err := s.identity.Login(r.Context(), body.Email, body.Password, body.UserType)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse{Token: sess.Token, User: publicActor(sess.Actor)})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	if err := s.identity.Logout(r.Context(), actor.ID); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	respondJSON(w, http.StatusOK, publicActor(actor))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var body struct {
		Name         *string       `json:"name"`
		ProfileImage *string       `json:"profileImage"`
		Skills       *[]string     `json:"skills"`
		Rating       *float64      `json:"rating"`
		Location     *geo.Location `json:"location"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.identity.UpdateProfile(r.Context(), actor.ID, identity.ProfileUpdate{
		Name:         body.Name,
		ProfileImage: body.ProfileImage,
		Skills:       body.Skills,
		Rating:       body.Rating,
		Location:     body.Location,
	})
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, publicActor(updated))
}

func (s *Server) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var body struct {
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
		Address string  `json:"address"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.identity.UpdateLocation(r.Context(), actor.ID, body.Lat, body.Lng, body.Address)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, publicActor(updated))
}
