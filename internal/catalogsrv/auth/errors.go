package auth

import (
	"net/http"

	"campussrv/internal/common/apperrors"
)

var (
	// ErrAuthError is the base error for authentication failures.
	ErrAuthError apperrors.Error = apperrors.New("authentication error").SetStatusCode(http.StatusUnauthorized)

	ErrInvalidToken       apperrors.Error = ErrAuthError.New("invalid session token")
	ErrExpiredToken       apperrors.Error = ErrAuthError.New("session expired")
	ErrInvalidCredentials apperrors.Error = ErrAuthError.New("invalid username or password")
	ErrUnauthorized       apperrors.Error = ErrAuthError.New("unauthorized")

	// ErrTokenGeneration covers failures minting a session token.
	ErrTokenGeneration apperrors.Error = apperrors.New("unable to create session token").SetStatusCode(http.StatusInternalServerError)
)
