// ABOUTME: Tests for signup, login, logout, and auth check handlers
// ABOUTME: Covers the end-to-end signup → login → check → logout flow

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/signup", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "hunter2hunter2",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Signup successful", body["message"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, "Ada", user["name"])
	assert.NotEmpty(t, user["id"])

	// Signup does not log the user in
	assert.Empty(t, rec.Result().Cookies())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	h := newTestServer(t)
	signupUser(t, h, "Ada", "ada@example.com", "hunter2hunter2")

	rec := doJSON(t, h, http.MethodPost, "/signup", map[string]string{
		"name": "Imposter", "email": "ada@example.com", "password": "different",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, rec)["message"])
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)
	userID := signupUser(t, h, "Ada", "ada@example.com", "hunter2hunter2")

	rec := doJSON(t, h, http.MethodPost, "/login", map[string]string{
		"email": "ada@example.com", "password": "hunter2hunter2",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Logged in successfully", body["message"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, userID, user["id"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "hatchboard_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	h := newTestServer(t)
	signupUser(t, h, "Ada", "ada@example.com", "hunter2hunter2")

	wrongPassword := doJSON(t, h, http.MethodPost, "/login", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	}, nil)
	unknownEmail := doJSON(t, h, http.MethodPost, "/login", map[string]string{
		"email": "nobody@example.com", "password": "wrong",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Empty(t, wrongPassword.Result().Cookies())
}

func TestAuthCheck(t *testing.T) {
	h := newTestServer(t)
	userID := signupUser(t, h, "Ada", "ada@example.com", "hunter2hunter2")

	// Anonymous
	rec := doJSON(t, h, http.MethodGet, "/auth/check", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["authenticated"])
	assert.NotContains(t, body, "user")

	// Authenticated
	cookie := loginUser(t, h, "ada@example.com", "hunter2hunter2")
	rec = doJSON(t, h, http.MethodGet, "/auth/check", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["authenticated"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, userID, user["id"])
	assert.Equal(t, "Ada", user["name"])
}

func TestLogout(t *testing.T) {
	h := newTestServer(t)
	signupUser(t, h, "Ada", "ada@example.com", "hunter2hunter2")
	cookie := loginUser(t, h, "ada@example.com", "hunter2hunter2")

	rec := doJSON(t, h, http.MethodPost, "/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decodeBody(t, rec)["message"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge, "logout should expire the cookie")

	// The server-side session is gone even if the client keeps the cookie
	rec = doJSON(t, h, http.MethodGet, "/auth/check", nil, cookie)
	assert.Equal(t, false, decodeBody(t, rec)["authenticated"])
}

func TestLogout_RequiresSession(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/logout", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MalformedBody(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/login", "not-an-object", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
