package middlewarex

import (
	"log/slog"
	"net/http"
	"strings"

	"tradevalues/pkg/contextx"
	"tradevalues/pkg/logx"
)

const headerNameUserID = "X-User-Id"

// UserID trusts the identity header set by the auth proxy in front of the
// service. Requests without it continue anonymously.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := contextx.UserID(strings.TrimSpace(r.Header.Get(headerNameUserID)))
		if userID.IsZero() {
			next.ServeHTTP(w, r)

			return
		}

		ctx := contextx.WithUserID(r.Context(), userID)
		ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldUserID, userID.String())))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
