// Package flash carries one-shot user messages across page redirects.
package flash

import (
	"net/http"
	"net/url"
)

// CookieName is the cookie holding the pending flash message.
const CookieName = "flash"

const maxAge = 60

// Set stores msg to be shown on the next rendered page.
func Set(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message, if any, and clears it.
func Pop(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}
