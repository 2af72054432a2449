package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when one is present, otherwise the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a query in a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
