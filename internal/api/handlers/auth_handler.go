package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lmoralesc/code-journal-be/internal/auth"
	"github.com/lmoralesc/code-journal-be/internal/services"
)

// AuthHandler handles sign-up and sign-in requests.
type AuthHandler struct {
	service services.UserServiceProvider
	issuer  *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{service: service, issuer: issuer}
}

// credentialsPayload is the body of both sign-up and sign-in requests. The
// plaintext password lives only for the duration of the request and is never
// logged.
type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUp handles new user registration.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, errValidation("invalid request body"))
		return
	}
	if payload.Username == "" {
		writeError(w, errValidation("username is required"))
		return
	}
	if payload.Password == "" {
		writeError(w, errValidation("password is required"))
		return
	}

	user, err := h.service.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// SignIn handles user authentication and token issuance.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, errValidation("invalid request body"))
		return
	}
	if payload.Username == "" || payload.Password == "" {
		writeError(w, errValidation("username and password are required"))
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.UserID).Msg("Failed to issue token")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
