package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"tradevalues/pkg/application/modules"
	"tradevalues/pkg/logx"
)

const (
	TypeCheckAlerts = "alerts:check"
	QueueAlerts     = "alerts"
)

type AlertChecker interface {
	Check(ctx context.Context) (int, error)
}

// AlertScanner evaluates pending price alerts. With Redis it runs as an asynq
// task scheduled every interval; without Redis Run drives it from a ticker.
type AlertScanner struct {
	checker  AlertChecker
	interval time.Duration
}

func NewAlertScanner(checker AlertChecker, interval time.Duration) *AlertScanner {
	return &AlertScanner{
		checker:  checker,
		interval: interval,
	}
}

func NewCheckAlertsTask() *asynq.Task {
	return asynq.NewTask(TypeCheckAlerts, nil)
}

// PeriodicTask registers the check with the asynq scheduler. A run that
// overlaps the next tick is dropped by the uniqueness lock.
func (w *AlertScanner) PeriodicTask() modules.AsynqPeriodicTask {
	return modules.AsynqPeriodicTask{
		Cronspec: "@every " + w.interval.String(),
		Task:     NewCheckAlertsTask(),
		Options: []asynq.Option{
			asynq.Queue(QueueAlerts),
			asynq.MaxRetry(0),
			asynq.Timeout(w.interval),
			asynq.Unique(w.interval),
		},
	}
}

func (w *AlertScanner) Handler() modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: TypeCheckAlerts,
		Handle:  w.HandleCheckAlerts,
	}
}

func (w *AlertScanner) HandleCheckAlerts(ctx context.Context, _ *asynq.Task) error {
	if err := w.scan(ctx); err != nil {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	return nil
}

func (w *AlertScanner) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger(ctx).Info("alert scanner started", slog.Duration("interval", w.interval))

	for {
		if err := w.scan(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("alert scan failed", logx.Error(err))
		}

		select {
		case <-ctx.Done():
			logger(ctx).Info("alert scanner stopped")

			return nil
		case <-ticker.C:
		}
	}
}

func (w *AlertScanner) scan(ctx context.Context) error {
	start := time.Now()

	triggered, err := w.checker.Check(ctx)
	if err != nil {
		return fmt.Errorf("checker.Check: %w", err)
	}

	logger(ctx).Debug("alerts checked",
		slog.Int("triggered", triggered),
		slog.Duration("took", time.Since(start)),
	)

	return nil
}
