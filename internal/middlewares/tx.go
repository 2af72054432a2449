package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/flash"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

// TxMiddleware runs each request inside a database transaction. The response
// is held back until the transaction is resolved: it is rolled back when the
// handler answers with a 4xx/5xx status, calls MarkRollback or panics, and
// committed otherwise. Functions registered with AfterCommit run only once the
// commit succeeded.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeTxError(w, r, isFormRequest(r))
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					if err := tx.Rollback(); err != nil {
						logger.Log.Errorw("failed to rollback transaction", "error", err)
					}
					panic(rec)
				}
			}()

			bw := &bufferedWriter{header: make(http.Header), status: http.StatusOK}
			scope := &txScope{tx: tx}

			ctx := context.WithValue(r.Context(), txKey, scope)
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.status >= http.StatusBadRequest || scope.rollback {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeTxError(w, r, isRedirect(bw.status))
				return
			}
			bw.flush(w)

			for _, fn := range scope.afterCommit {
				fn()
			}
		})
	}
}

// writeTxError reports a transaction failure. Page flows go back to the
// submitted page with a flash message; API calls get a JSON error.
func writeTxError(w http.ResponseWriter, r *http.Request, page bool) {
	if page {
		flash.Set(w, "Something went wrong, please try again.")
		http.Redirect(w, r, r.URL.Path, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": "Internal server error",
	})
}

func isRedirect(status int) bool {
	return status >= http.StatusMultipleChoices && status < http.StatusBadRequest
}

func isFormRequest(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

// bufferedWriter records a response so it can be replaced before it is sent.
type bufferedWriter struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.status = code
	bw.wroteHeader = true
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.wroteHeader = true
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	dst := w.Header()
	for k, v := range bw.header {
		dst[k] = v
	}
	w.WriteHeader(bw.status)
	w.Write(bw.body.Bytes())
}

type txKeyType struct{}

var txKey = txKeyType{}

// txScope is the request transaction and what to do once it is resolved.
type txScope struct {
	tx          *sqlx.Tx
	rollback    bool
	afterCommit []func()
}

func getScope(ctx context.Context) *txScope {
	scope, _ := ctx.Value(txKey).(*txScope)
	return scope
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	if scope := getScope(ctx); scope != nil {
		return scope.tx
	}
	return nil
}

// MarkRollback makes the request transaction roll back whatever the response
// status. It is a no-op outside TxMiddleware.
func MarkRollback(ctx context.Context) {
	if scope := getScope(ctx); scope != nil {
		scope.rollback = true
	}
}

// AfterCommit schedules fn to run after the request transaction commits.
// It reports false, without scheduling, when ctx carries no transaction.
func AfterCommit(ctx context.Context, fn func()) bool {
	scope := getScope(ctx)
	if scope == nil {
		return false
	}
	scope.afterCommit = append(scope.afterCommit, fn)
	return true
}
