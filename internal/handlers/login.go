package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/flash"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/jwt"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// CookieOptions controls the session cookie issued on login.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// NewLoginHandler returns an HTTP handler for the login form.
// @Summary User login
// @Description Authenticates by email and password, stores the session token in the session cookie and redirects to the dashboard.
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 302 "Redirect to /dashboard on success, back to /login otherwise"
// @Router /login [post]
func NewLoginHandler(svc Loginer, opts CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := decodeCredentials(r)
		if err != nil {
			flash.Set(w, "Invalid login request.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		token, err := svc.Login(r.Context(), form.Email, form.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				flash.Set(w, "Invalid email or password.")
			} else {
				logger.Log.Errorw("internal server error", "err", err)
				flash.Set(w, "Login failed, please try again.")
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(opts.MaxAge.Seconds()),
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}
}
