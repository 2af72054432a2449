package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/flash"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/jwt"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

var errSessionMismatch = errors.New("session belongs to another user")

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionReader resolves a server-side session to its user.
type SessionReader interface {
	GetUserID(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
}

// AuthMiddleware authenticates API requests. Unauthenticated requests get a
// 401 JSON error.
func AuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return authenticate(tokener, sessions, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "Unauthorized",
		})
	})
}

// PageAuthMiddleware authenticates page requests. Unauthenticated requests
// are redirected to loginPath with a flash message.
func PageAuthMiddleware(tokener Tokener, sessions SessionReader, loginPath string) func(http.Handler) http.Handler {
	return authenticate(tokener, sessions, func(w http.ResponseWriter, r *http.Request) {
		flash.Set(w, "Please log in to access this page.")
		http.Redirect(w, r, loginPath, http.StatusFound)
	})
}

func authenticate(tokener Tokener, sessions SessionReader, deny http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, err := resolveIdentity(ctx, tokener, sessions, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "path", r.URL.Path, "err", err)
				deny(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetIdentity(ctx, identity)))
		})
	}
}

// resolveIdentity checks the request token and its server-side session.
func resolveIdentity(ctx context.Context, tokener Tokener, sessions SessionReader, r *http.Request) (Identity, error) {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return Identity{}, err
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return Identity{}, err
	}

	userID, err := sessions.GetUserID(ctx, claims.SessionID)
	if err != nil {
		return Identity{}, err
	}
	if userID != claims.UserID {
		return Identity{}, errSessionMismatch
	}

	return Identity{UserID: userID, SessionID: claims.SessionID}, nil
}

// Identity is the authenticated user of a request.
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

type identityKey struct{}

// SetIdentity stores the authenticated identity in the context
func SetIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the authenticated identity, if any.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

// GetUserIDFromContext returns the authenticated user id, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	return identity.UserID, ok
}
