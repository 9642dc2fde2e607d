package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Vexa12/climexa/internal/domain"
)

type authRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// handleRegister creates a new account unless the email is already taken.
// Uniqueness is a check-then-add at this layer; the repository itself does
// not enforce it.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "email and name are required")
		return
	}

	_, exists, err := s.deps.Users.FindByEmail(req.Email)
	if err != nil {
		s.storeError(w, "find user", err)
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "El usuario ya existe")
		return
	}

	user := domain.User{
		ID:        domain.NewID(),
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: domain.Now(),
	}
	if err := s.deps.Users.Add(user); err != nil {
		s.storeError(w, "add user", err)
		return
	}
	if err := s.deps.Sessions.Set(user); err != nil {
		s.storeError(w, "set session", err)
		return
	}

	s.logger.Info("user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

// handleLogin looks the user up by email; there are no credentials beyond that.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, exists, err := s.deps.Users.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		s.storeError(w, "find user", err)
		return
	}
	if !exists {
		writeError(w, http.StatusUnauthorized, "Usuario no encontrado")
		return
	}

	if err := s.deps.Sessions.Set(user); err != nil {
		s.storeError(w, "set session", err)
		return
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	if err := s.deps.Sessions.Clear(); err != nil {
		s.storeError(w, "clear session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, _ *http.Request) {
	user, ok, err := s.deps.Sessions.Current()
	if err != nil {
		s.storeError(w, "read session", err)
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// currentUser loads the session user, writing a 401 when absent. The bool
// reports whether the caller may proceed.
func (s *Server) currentUser(w http.ResponseWriter) (domain.User, bool) {
	user, ok, err := s.deps.Sessions.Current()
	if err != nil {
		s.storeError(w, "read session", err)
		return domain.User{}, false
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "no active session")
		return domain.User{}, false
	}
	return user, true
}

func (s *Server) storeError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("store operation failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "storage failure")
}
