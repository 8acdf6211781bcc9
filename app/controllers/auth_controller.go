package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/sirupsen/logrus"
)

// AuthController handles signup and login requests
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup registers a new account and returns it with a token
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		sendError(w, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	user, token, err := ac.auth.Signup(req.Username, req.Email, req.Password)
	switch {
	case err == repositories.ErrDuplicateEmail:
		sendError(w, http.StatusBadRequest, "Email is already registered")
		return
	case err == repositories.ErrDuplicateUsername:
		sendError(w, http.StatusBadRequest, "Username is already taken")
		return
	case err != nil:
		logrus.WithError(err).Warn("signup failed")
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login verifies credentials and returns the user with a token
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		sendError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := ac.auth.Login(req.Email, req.Password)
	if err == services.ErrInvalidCredentials {
		sendError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("login failed")
		sendError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	sendJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}
