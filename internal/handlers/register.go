package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/flash"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/middlewares"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (uuid.UUID, error)
}

// NewRegisterHandler returns an HTTP handler for the registration form.
// @Summary Register a new user
// @Description Creates a new account with a unique username and email. Accepts a form or JSON body and redirects to the login page.
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 302 "Redirect to /login on success, back to /register otherwise"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := decodeCredentials(r)
		if err != nil {
			flash.Set(w, "Invalid registration request.")
			http.Redirect(w, r, "/register", http.StatusFound)
			return
		}

		_, err = svc.Register(r.Context(), form.Username, form.Email, form.Password)
		if err != nil {
			// the redirect below would otherwise commit a failed insert
			middlewares.MarkRollback(r.Context())
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				flash.Set(w, "Username or email already exists.")
			case errors.Is(err, services.ErrInvalidRegistration):
				flash.Set(w, "Username, email and password are required.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				flash.Set(w, "Registration failed, please try again.")
			}
			http.Redirect(w, r, "/register", http.StatusFound)
			return
		}

		flash.Set(w, "Registration successful. Please log in.")
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
