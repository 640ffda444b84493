// Package httpx provides HTTP request/response handling utilities.
// It includes support for JSON request parsing, standardized JSON
// responses, and error responses carrying a detail list.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"campussrv/internal/common/apperrors"
)

// GetRequestData parses a JSON request body into the provided data
// structure. Only POST and PUT requests carry bodies in this API.
func GetRequestData(r *http.Request, data any) error {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		return ErrReqMethodNotSupported()
	}
	if r.Body == nil {
		log.Ctx(r.Context()).Error().Msg("empty request body")
		return ErrUnableToParseReqData()
	}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		return ErrUnableToParseReqData()
	}
	return nil
}

// Response represents an HTTP response with a status code, optional
// Location header value, cookies to set, and a body to serialize.
type Response struct {
	StatusCode int
	Location   string
	Cookies    []*http.Cookie
	Response   any
}

// RequestHandler defines the handler shape used throughout the API: parse
// the request, return either a response or an error.
type RequestHandler func(r *http.Request) (*Response, error)

// WrapHttpRsp adapts a RequestHandler into an http.HandlerFunc with
// uniform error rendering: *Error values are sent as-is, apperrors carry
// their own status code, anything else collapses to a 500.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			if httperror, ok := err.(*Error); ok {
				httperror.Send(w)
			} else if appErr, ok := err.(apperrors.Error); ok {
				SendError(w, appErr)
			} else {
				ErrApplicationError(err.Error()).Send(w)
			}
			return
		}
		if rsp == nil {
			ErrApplicationError().Send(w)
			return
		}
		for _, cookie := range rsp.Cookies {
			http.SetCookie(w, cookie)
		}
		var location []string
		if rsp.Location != "" {
			location = append(location, rsp.Location)
		}
		SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response, location...)
	})
}
