package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campussrv/internal/common/httpx"
)

// Router creates and configures a new router for authentication-related endpoints.
func Router(r chi.Router) chi.Router {
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Method(http.MethodPost, "/login", httpx.WrapHttpRsp(LoginUser))
		r.Method(http.MethodPost, "/logout", httpx.WrapHttpRsp(LogoutUser))
	})
	return router
}
