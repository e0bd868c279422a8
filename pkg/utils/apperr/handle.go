package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs an error that could not be returned to a caller. Context
// values attached with goerr are flattened into the log entry.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	attrs := []any{"error", err}
	for k, v := range goerr.Values(err) {
		attrs = append(attrs, k, v)
	}

	ctxlog.From(ctx).Error("application error", attrs...)
}
