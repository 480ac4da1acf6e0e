// ABOUTME: Handlers for signup, login, logout, and session checks
// ABOUTME: Login failures collapse into one response to avoid email enumeration

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hatchboard/hatchboard/internal/auth"
	"github.com/hatchboard/hatchboard/internal/store"
)

// loginRequest is the JSON request body for POST /login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupRequest is the JSON request body for POST /signup.
type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the user object embedded in auth responses.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// authUserResponse is the JSON response for successful login/signup.
type authUserResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// authCheckResponse is the JSON response for GET /auth/check.
type authCheckResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *userResponse `json:"user,omitempty"`
}

func userResponseFrom(u *store.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

// handleLogin handles POST /login. Both unknown email and wrong
// password produce the same 401 body.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := s.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrNoSuchUser) || errors.Is(err, auth.ErrBadPassword) {
			s.metrics.RecordLogin("failure")
			respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.logger.Error("authenticating user", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	sessionID, err := s.sessions.Create(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("creating session", "error", err, "user_id", user.ID)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	value, err := s.codec.Encode(sessionID)
	if err != nil {
		s.logger.Error("encoding session cookie", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.metrics.RecordLogin("success")
	s.cookies.Set(w, value)
	respondJSON(w, http.StatusOK, authUserResponse{
		Message: "Logged in successfully",
		User:    userResponseFrom(user),
	})
}

// handleSignup handles POST /signup. Successful signup does not log
// the user in; the frontend redirects to the login page.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hashing password", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := &store.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			respondMessage(w, http.StatusBadRequest, "Email already registered")
			return
		}
		s.logger.Error("creating user", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, authUserResponse{
		Message: "Signup successful",
		User:    userResponseFrom(user),
	})
}

// handleLogout handles POST /logout for authenticated sessions.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		if sessionID, err := s.codec.Decode(cookie.Value); err == nil {
			if err := s.sessions.Destroy(r.Context(), sessionID); err != nil {
				s.logger.Error("destroying session", "error", err)
				respondMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}
	}

	s.cookies.Clear(w)
	respondMessage(w, http.StatusOK, "Logged out successfully")
}

// handleAuthCheck handles GET /auth/check for both authenticated and
// anonymous requests.
func (s *Server) handleAuthCheck(w http.ResponseWriter, r *http.Request) {
	p := auth.FromContext(r.Context())
	if p == nil {
		respondJSON(w, http.StatusOK, authCheckResponse{Authenticated: false})
		return
	}
	respondJSON(w, http.StatusOK, authCheckResponse{
		Authenticated: true,
		User:          &userResponse{ID: p.ID, Email: p.Email, Name: p.Name},
	})
}
