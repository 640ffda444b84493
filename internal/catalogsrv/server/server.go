// Package server assembles the campus catalog HTTP server: middleware
// stack, route mounting, and the static file handler for uploaded
// images.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/apis"
	"campussrv/internal/catalogsrv/auth"
	"campussrv/internal/catalogsrv/catcommon"
	"campussrv/internal/catalogsrv/config"
	"campussrv/internal/catalogsrv/db"
	"campussrv/internal/common/httpx"
	commonmiddleware "campussrv/internal/common/middleware"
)

// requestTimeout bounds handler execution time.
const requestTimeout = 30 * time.Second

type CampusServer struct {
	Router *chi.Mux
}

func CreateNewServer() (*CampusServer, error) {
	s := &CampusServer{}
	s.Router = chi.NewRouter()
	return s, nil
}

func (s *CampusServer) MountHandlers() {
	s.Router.Use(commonmiddleware.RequestLogger)
	s.Router.Use(commonmiddleware.PanicHandler)
	s.Router.Use(commonmiddleware.SetTimeout(requestTimeout))
	if config.Config().HandleCORS {
		s.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	s.Router.Use(limitRequestBody)
	s.Router.Use(auth.ContextMiddleware)
	s.mountResourceHandlers(s.Router)
}

func (s *CampusServer) mountResourceHandlers(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", auth.Router(r))
		r.Group(func(r chi.Router) {
			r.Use(db.LoadDBMiddleware)
			apis.Router(r)
		})
	})
	r.Get("/version", s.getVersion)
	r.Get("/ready", s.getReadiness)
	s.mountUploadDir(r)
}

// mountUploadDir serves the upload directory under its public prefix so
// uploaded images are reachable at the paths the API hands out.
func (s *CampusServer) mountUploadDir(r chi.Router) {
	prefix := strings.TrimSuffix(config.Config().Upload.PublicPrefix, "/")
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(config.Config().Upload.Dir)))
	r.Get(prefix+"/*", fileServer.ServeHTTP)
}

// limitRequestBody caps request body size. Multipart uploads get the
// larger upload limit; everything else is held to the JSON body limit.
func limitRequestBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := config.Config().MaxRequestBodySize
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			limit = config.Config().Upload.MaxUploadSize
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}

type GetVersionRsp struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

func (s *CampusServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &GetVersionRsp{
		ServerVersion: "Campus Catalog Server: " + catcommon.ServerVersion,
		ApiVersion:    catcommon.ApiVersion,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

func (s *CampusServer) getReadiness(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("Readiness check")

	ctx, err := db.ConnCtx(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("database connection failed during readiness check")
		httpx.SendJsonRsp(r.Context(), w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}
	defer db.DB(ctx).Close(ctx)

	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
