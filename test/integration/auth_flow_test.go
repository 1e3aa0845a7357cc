//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	w := performRequest("POST", "/register", map[string]any{
		"username": "builder",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// duplicate username is a client error
	w = performRequest("POST", "/register", map[string]any{
		"username": "builder",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest("POST", "/login", map[string]any{
		"username": "builder",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token    string `json:"token"`
		UID      string `json:"user_id"`
		Username string `json:"username"`
	}
	decodeBody(t, w, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "builder", login.Username)

	w = performRequest("GET", "/auth/status", nil, login.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest("GET", "/auth/status", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// rotate the password, old credentials stop working
	w = performRequest("PUT", "/auth/password", map[string]any{
		"old_password": "secret123",
		"new_password": "rotated456",
	}, login.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest("POST", "/login", map[string]any{
		"username": "builder",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest("POST", "/login", map[string]any{
		"username": "builder",
		"password": "rotated456",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	w := performRequest("POST", "/login", map[string]any{
		"username": "ghost",
		"password": "whatever",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	w := performRequest("POST", "/register", map[string]any{
		"username": "rotator",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest("POST", "/login", map[string]any{
		"username": "rotator",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &login)

	w = performRequest("PUT", "/auth/password", map[string]any{
		"old_password": "wrong",
		"new_password": "rotated456",
	}, login.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
