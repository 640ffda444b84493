package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campussrv/internal/catalogsrv/config"
)

func executeLoginRequest(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/auth", Router(r))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLoginSuccess(t *testing.T) {
	testInit(t)

	rr := executeLoginRequest(t, loginRequest{Username: "admin", Password: "secret123"})
	require.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == config.Config().Session.CookieName {
			session = c
		}
	}
	require.NotNil(t, session, "session cookie not set")
	assert.True(t, session.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, session.SameSite)

	payload, err := DecodeSession(session.Value)
	require.Nil(t, err)
	assert.Equal(t, "admin", payload.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	testInit(t)

	rr := executeLoginRequest(t, loginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestLoginWrongUsername(t *testing.T) {
	testInit(t)

	rr := executeLoginRequest(t, loginRequest{Username: "root", Password: "secret123"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	testInit(t)

	r := chi.NewRouter()
	r.Mount("/auth", Router(r))

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, config.Config().Session.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
