package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/app/repositories/mock"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthController() (*AuthController, *mux.Router) {
	users := mock.NewUserRepository()
	auth := services.NewAuthService(users, []byte("test-secret"))
	controller := NewAuthController(auth)

	router := mux.NewRouter()
	router.HandleFunc("/signup", controller.Signup).Methods("POST")
	router.HandleFunc("/login", controller.Login).Methods("POST")
	return controller, router
}

func postJSON(router *mux.Router, path, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupEndpoint(t *testing.T) {
	_, router := setupAuthController()

	t.Run("creates account", func(t *testing.T) {
		w := postJSON(router, "/signup", `{
			"username": "alice",
			"email": "alice@example.com",
			"password": "password123"
		}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			Token string `json:"token"`
			User  struct {
				ID       int    `json:"_id"`
				Username string `json:"username"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "alice", response.User.Username)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("duplicate email names the email field", func(t *testing.T) {
		// Username is also taken; the email conflict must win.
		w := postJSON(router, "/signup", `{
			"username": "alice",
			"email": "alice@example.com",
			"password": "password123"
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email is already registered")
	})

	t.Run("duplicate username", func(t *testing.T) {
		w := postJSON(router, "/signup", `{
			"username": "alice",
			"email": "fresh@example.com",
			"password": "password123"
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Username is already taken")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(router, "/signup", `{"username": "bob"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := postJSON(router, "/signup", `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	_, router := setupAuthController()
	w := postJSON(router, "/signup", `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "password123"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("valid credentials", func(t *testing.T) {
		w := postJSON(router, "/login", `{
			"email": "alice@example.com",
			"password": "password123"
		}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(router, "/login", `{
			"email": "alice@example.com",
			"password": "wrong"
		}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("unknown email gets the identical message", func(t *testing.T) {
		wrongPass := postJSON(router, "/login", `{
			"email": "alice@example.com",
			"password": "wrong"
		}`)
		unknown := postJSON(router, "/login", `{
			"email": "nobody@example.com",
			"password": "password123"
		}`)

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(router, "/login", `{"email": "alice@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
