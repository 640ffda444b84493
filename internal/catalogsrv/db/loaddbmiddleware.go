package db

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"campussrv/internal/common/httpx"
)

// LoadDBMiddleware is a middleware that loads a db connection into the
// request context and closes it after the request is served. When the
// context already carries a Database the request passes through, so
// tests can preload a stub store.
func LoadDBMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(ctxStoreKey).(Database); ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := ConnCtx(r.Context())
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("unable to get db connection")
			httpx.ErrApplicationError("unable to service request at this time").Send(w)
			return
		}
		defer func() {
			if dbConn := DB(ctx); dbConn != nil {
				dbConn.Close(context.Background()) // use background to avoid canceled context
			}
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
