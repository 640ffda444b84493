package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"campussrv/internal/catalogsrv/config"
	"campussrv/internal/common/httpx"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
}

// LoginUser authenticates the admin credentials and sets the session
// cookie. Username and password failures return the same error so the
// response does not reveal which was wrong.
func LoginUser(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &loginRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}

	cfg := config.Config()
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.Auth.AdminUsername)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(cfg.Auth.AdminPasswordHash, []byte(req.Password)) == nil
	if !usernameOK || !passwordOK {
		log.Ctx(ctx).Info().Msg("login rejected")
		return nil, ErrInvalidCredentials
	}

	expires := time.Now().Add(cfg.Session.GetExpirationTimeOrDefault())
	token, tokenErr := EncodeSession(req.Username, expires)
	if tokenErr != nil {
		return nil, tokenErr
	}

	log.Ctx(ctx).Info().Str("username", req.Username).Msg("login successful")

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Cookies:    []*http.Cookie{sessionCookie(token, expires)},
		Response:   loginResponse{Message: "login successful"},
	}, nil
}

// LogoutUser clears the session cookie. There is no server-side session
// state to revoke; expiry is the only other termination mechanism.
func LogoutUser(r *http.Request) (*httpx.Response, error) {
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Cookies:    []*http.Cookie{clearedSessionCookie()},
		Response:   loginResponse{Message: "logged out"},
	}, nil
}

func sessionCookie(token string, expires time.Time) *http.Cookie {
	cfg := config.Config().Session
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func clearedSessionCookie() *http.Cookie {
	cfg := config.Config().Session
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
