package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"tradevalues/pkg/httpx/reply"
	"tradevalues/pkg/logx"
)

// Recovery turns a handler panic into the regular JSON error body so the
// client still gets a support id to report.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if rec == http.ErrAbortHandler { //nolint:errorlint,err113 // sentinel compared as net/http does
				panic(rec)
			}

			logger(ctx).Error(
				"panic in handler",
				slog.String(logx.FieldError, fmt.Sprint(rec)),
				slog.String(logx.FieldStack, string(debug.Stack())),
				slog.String(logx.FieldURL, r.URL.Path),
			)

			reply.Error(ctx, w, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
