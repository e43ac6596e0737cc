package notifier_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain/service/alert"
	"tradevalues/internal/infrastructure/notifier"
	"tradevalues/pkg/contextx"
)

const testToken = "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsawq"

func TestTelegramBotNotify(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	var (
		mu   sync.Mutex
		path string
		body string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)

		mu.Lock()
		path, body = r.URL.Path, string(b)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
	}))
	t.Cleanup(srv.Close)

	bot, err := notifier.NewTelegramBot(testToken, 42, srv.Client(), telego.WithAPIServer(srv.URL))
	rq.NoError(err)

	err = bot.Notify(context.Background(), alert.Notification{
		UserID:  "user-1",
		AlertID: "01J0000000000000000000000A",
		Title:   "Price Alert Triggered!",
		Text:    "Harvester is now above 150.0K (current: 180.0K)",
	})
	rq.NoError(err)

	mu.Lock()
	defer mu.Unlock()

	rq.True(strings.HasSuffix(path, "/sendMessage"), path)
	rq.Contains(body, "Harvester is now above 150.0K")
	rq.Contains(body, "user-1")
}

func TestLogNotify(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	err := notifier.NewLog().Notify(ctx, alert.Notification{
		UserID: "user-1",
		Title:  "Price Alert Triggered!",
		Text:   "Harvester is now below 2.5K (current: 2.4K)",
	})
	rq.NoError(err)
	rq.Contains(buf.String(), `"msg":"Price Alert Triggered!"`)
	rq.Contains(buf.String(), `"user-id":"user-1"`)
	rq.Contains(buf.String(), "Harvester is now below 2.5K")
}
