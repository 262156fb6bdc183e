package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/obiajulu/fintrack-be/internal/api/respond"
	"github.com/obiajulu/fintrack-be/internal/services"
	"github.com/obiajulu/fintrack-be/internal/validation"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	service services.AuthServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles new user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	values, err := validation.Register().Validate(body)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	user, token, err := h.service.Register(r.Context(),
		values.String("fullName"), values.String("email"), values.String("password"))
	if err != nil {
		log.Warn().Err(err).Str("email", values.String("email")).Msg("Registration failed")
		respond.Error(w, r, err)
		return
	}

	respond.Auth(w, http.StatusCreated, "Registered successfully", token, user)
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	values, err := validation.Login().Validate(body)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	user, token, err := h.service.Login(r.Context(), values.String("email"), values.String("password"))
	if err != nil {
		log.Warn().Str("email", values.String("email")).Msg("Failed authentication attempt")
		respond.Error(w, r, err)
		return
	}

	respond.Auth(w, http.StatusOK, "Login successful", token, user)
}
