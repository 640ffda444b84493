// Package auth implements the admin session: a signed, short-lived
// token carried in an HTTP-only cookie, a login/logout handler pair to
// mint and clear it, and the authorization gate consulted by mutating
// catalog operations. A configured shared bearer secret is accepted as
// a fallback credential for non-interactive clients.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campussrv/internal/catalogsrv/config"
	"campussrv/internal/common/apperrors"
)

// SessionPayload is the decoded content of a session token.
type SessionPayload struct {
	Username string
	Expires  time.Time
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// EncodeSession mints a signed token embedding the username and expiry.
// The token is tamper-evident; any alteration fails decoding.
func EncodeSession(username string, expires time.Time) (string, apperrors.Error) {
	claims := sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config().Session.SigningSecret))
	if err != nil {
		return "", ErrTokenGeneration.Err(err)
	}
	return signed, nil
}

// DecodeSession verifies and decodes a session token. It fails when the
// token is malformed, carries an invalid signature, or has expired.
func DecodeSession(tokenStr string) (*SessionPayload, apperrors.Error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken.Msg("unexpected signing method")
		}
		return []byte(config.Config().Session.SigningSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken.Err(err)
		}
		return nil, ErrInvalidToken.Err(err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Username == "" {
		return nil, ErrInvalidToken.Msg("missing username")
	}

	return &SessionPayload{
		Username: claims.Username,
		Expires:  claims.ExpiresAt.Time,
	}, nil
}
