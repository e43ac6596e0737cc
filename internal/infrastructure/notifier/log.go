package notifier

import (
	"context"
	"log/slog"

	"tradevalues/internal/domain/service/alert"
	"tradevalues/pkg/logx"
)

// Log writes notifications to the context logger. It is used when no bot
// token is configured.
type Log struct{}

func NewLog() Log {
	return Log{}
}

func (Log) Notify(ctx context.Context, n alert.Notification) error {
	logger(ctx).Info(n.Title,
		slog.String(logx.FieldUserID, n.UserID.String()),
		slog.String(logx.FieldAlertID, n.AlertID.String()),
		slog.String("text", n.Text),
	)

	return nil
}
