package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/catcommon"
	"campussrv/internal/catalogsrv/config"
	"campussrv/internal/common/httpx"
)

// credentialChecker inspects one kind of credential on a request and
// returns the authenticated principal, or nil when the credential is
// absent or invalid. Checkers never fail the request; the next checker
// in order gets its chance.
type credentialChecker func(r *http.Request) *catcommon.UserContext

// checkers are tried in order; the first match wins. The session cookie
// is preferred; the shared bearer secret is a fallback for
// non-interactive clients.
var checkers = []credentialChecker{
	sessionCookieChecker,
	bearerSecretChecker,
}

// sessionCookieChecker authenticates via the session cookie. Decode
// failures are swallowed so the bearer fallback can still run.
func sessionCookieChecker(r *http.Request) *catcommon.UserContext {
	cookie, err := r.Cookie(config.Config().Session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	payload, decodeErr := DecodeSession(cookie.Value)
	if decodeErr != nil {
		log.Ctx(r.Context()).Debug().Str("error", decodeErr.Error()).Msg("session cookie rejected")
		return nil
	}
	return &catcommon.UserContext{
		Username:  payload.Username,
		Principal: catcommon.PrincipalTypeAdmin,
	}
}

// bearerSecretChecker authenticates via the Authorization header
// against the configured shared secret. An empty configured secret
// disables this path entirely.
func bearerSecretChecker(r *http.Request) *catcommon.UserContext {
	secret := config.Config().Auth.APISharedSecret
	if secret == "" {
		return nil
	}
	authHeader := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		return nil
	}
	return &catcommon.UserContext{
		Principal: catcommon.PrincipalTypeService,
	}
}

// Authenticate returns the principal presented by the request, or nil
// when no credential checks out. Read-only check; no side effects.
func Authenticate(r *http.Request) *catcommon.UserContext {
	for _, check := range checkers {
		if user := check(r); user != nil {
			return user
		}
	}
	return nil
}

// ContextMiddleware attaches the authenticated principal, if any, to
// the request context. Unauthenticated requests pass through untouched;
// enforcement happens per-route.
func ContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := Authenticate(r); user != nil {
			ctx := catcommon.WithUserContext(r.Context(), user)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// EnforceAuthMiddleware wraps a request handler so it only runs for
// authenticated requests. The rejection carries no detail about which
// credential check failed.
func EnforceAuthMiddleware(handler httpx.RequestHandler) httpx.RequestHandler {
	return func(r *http.Request) (*httpx.Response, error) {
		if catcommon.GetUserContext(r.Context()) == nil {
			return nil, ErrUnauthorized
		}
		return handler(r)
	}
}
