package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/flash"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/middlewares"
)

// withUser marks the request as authenticated by userID.
func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := middlewares.SetIdentity(r.Context(), middlewares.Identity{UserID: userID, SessionID: uuid.New()})
	return r.WithContext(ctx)
}

// withURLParam sets a chi route parameter on the request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// flashOf returns the flash message set on the response.
func flashOf(rr *httptest.ResponseRecorder) string {
	for _, c := range rr.Result().Cookies() {
		if c.Name == flash.CookieName && c.MaxAge >= 0 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(c)
			return flash.Pop(httptest.NewRecorder(), req)
		}
	}
	return ""
}
