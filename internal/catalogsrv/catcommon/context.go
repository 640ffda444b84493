// Package catcommon holds the shared domain vocabulary of the campus
// service: catalog enumerations and request context helpers.
package catcommon

import (
	"context"
)

// ctxKeyType represents the type for all context keys
type ctxKeyType string

const (
	ctxUserContextKey ctxKeyType = "CampusUserContext"
	ctxTestContextKey ctxKeyType = "CampusTestContext"
)

// PrincipalType identifies how a request was authenticated.
type PrincipalType string

const (
	PrincipalTypeAdmin   PrincipalType = "admin"   // session cookie
	PrincipalTypeService PrincipalType = "service" // shared bearer secret
)

// UserContext represents the authenticated principal of a request.
type UserContext struct {
	// Username is the login name of the principal. Service principals
	// authenticated with the shared secret have no username.
	Username string
	// Principal is the kind of credential that was presented.
	Principal PrincipalType
}

// WithUserContext stores the authenticated principal in the context.
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, ctxUserContextKey, user)
}

// GetUserContext retrieves the authenticated principal from the context,
// or nil when the request was not authenticated.
func GetUserContext(ctx context.Context) *UserContext {
	user, ok := ctx.Value(ctxUserContextKey).(*UserContext)
	if !ok {
		return nil
	}
	return user
}

// WithTestContext marks the context as belonging to a test.
func WithTestContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxTestContextKey, true)
}

// IsTestContext reports whether the context belongs to a test.
func IsTestContext(ctx context.Context) bool {
	v, ok := ctx.Value(ctxTestContextKey).(bool)
	return ok && v
}
