package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/flash"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/jwt"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

// Logouter revokes server-side sessions.
type Logouter interface {
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// TokenParser extracts and verifies the session token of a request.
type TokenParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// NewLogoutHandler revokes the caller's session, if any, clears the session
// cookie and redirects to the landing page.
// @Summary Logout
// @Tags auth
// @Success 302 "Redirect to /"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter, tokens TokenParser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token, err := tokens.GetTokenFromRequest(ctx, r); err == nil {
			if claims, err := tokens.GetClaims(ctx, token); err == nil {
				if err := svc.Logout(ctx, claims.SessionID); err != nil {
					logger.Log.Errorw("failed to revoke session", "err", err)
				}
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		flash.Set(w, "You have been logged out.")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
