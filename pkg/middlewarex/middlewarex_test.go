package middlewarex_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tradevalues/pkg/contextx"
	"tradevalues/pkg/middlewarex"
	"tradevalues/pkg/rest"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		incoming string
	}{
		{name: "Generated", incoming: ""},
		{name: "Propagated", incoming: "abc-123"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				seen = traceID
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.incoming != "" {
				req.Header.Set("X-Trace-Id", tc.incoming)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), rec.Header().Get("X-Trace-Id"))

			if tc.incoming != "" {
				rq.Equal(tc.incoming, seen.String())
			}
		})
	}
}

func TestUserID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		header string
		want   contextx.UserID
		found  bool
	}{
		{name: "Present", header: "user-1", want: "user-1", found: true},
		{name: "Trimmed", header: "  user-2 ", want: "user-2", found: true},
		{name: "Missing", header: "", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				got   contextx.UserID
				found bool
			)

			h := middlewarex.UserID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				userID, err := contextx.UserIDFromContext(r.Context())
				found = err == nil
				got = userID
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-User-Id", tc.header)

			h.ServeHTTP(httptest.NewRecorder(), req)

			rq.Equal(tc.found, found)
			rq.Equal(tc.want, got)
		})
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusInternalServerError, rec.Code)

	var body rest.Error

	rq.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	rq.Equal(rest.ErrorCode("InternalServerError"), body.Code)
	rq.Equal(rec.Header().Get("X-Trace-Id"), body.SupportID)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middlewarex.TraceID(middlewarex.Logger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		contextx.LoggerFromContextOrDefault(r.Context()).Info("inside")
	})))

	r := httptest.NewRequest(http.MethodGet, "/v1/games", http.NoBody)
	r.Header.Set("X-Trace-Id", "trace-42")
	r = r.WithContext(contextx.WithLogger(r.Context(), base))

	h.ServeHTTP(httptest.NewRecorder(), r)

	rq.Contains(buf.String(), `"trace-id":"trace-42"`)
	rq.Contains(buf.String(), `"http-method":"GET"`)
	rq.Contains(buf.String(), `"url":"/v1/games"`)
}
