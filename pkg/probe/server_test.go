package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"tradevalues/pkg/probe"
)

func TestServer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		appName       string
		appVersion    string
		body          []byte
	}{
		{
			name:          "Health handler",
			listenAddress: ":10001",
			endpoint:      "http://:10001/healthz",
			statusCode:    http.StatusOK,
			appName:       "tradevalues",
			appVersion:    "v0.0.1",
			body:          []byte(`{"name":"tradevalues","version":"v0.0.1"}`),
		},
		{
			name:          "Ready handler",
			listenAddress: ":10002",
			endpoint:      "http://:10002/ready",
			statusCode:    http.StatusOK,
			appName:       "tradevalues",
			appVersion:    "v0.0.2",
			body:          []byte(`{"name":"tradevalues","version":"v0.0.2"}`),
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10003",
			endpoint:      "http://:10003/invalid",
			statusCode:    http.StatusNotFound,
			body:          []byte("404 page not found\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			probeServer := probe.NewServer(
				tc.listenAddress,
				probe.Options{
					Name:    tc.appName,
					Version: tc.appVersion,
				},
				nil,
			)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return probeServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, bodyBytes)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}

func TestReadyChecks(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		checks     map[string]probe.Check
		statusCode int
		contains   string
	}{
		{
			name: "All checks pass",
			checks: map[string]probe.Check{
				"postgres": func(context.Context) error { return nil },
			},
			statusCode: http.StatusOK,
			contains:   `"name":"tradevalues"`,
		},
		{
			name: "Redis down",
			checks: map[string]probe.Check{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
			},
			statusCode: http.StatusServiceUnavailable,
			contains:   `"redis":"dial tcp: refused"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			srv := probe.NewServer("", probe.Options{Name: "tradevalues", Version: "dev"}, tc.checks)

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)
			rq.Contains(rec.Body.String(), tc.contains)

			rec = httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

			rq.Equal(http.StatusOK, rec.Code)
		})
	}
}
