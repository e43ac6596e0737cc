package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"tradevalues/internal/worker"
)

func TestHandleCheckAlerts(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	checker := &worker.AlertCheckerMock{
		CheckFunc: func(context.Context) (int, error) { return 2, nil },
	}

	w := worker.NewAlertScanner(checker, 30*time.Second)

	rq.NoError(w.HandleCheckAlerts(context.Background(), worker.NewCheckAlertsTask()))
	rq.Len(checker.CheckCalls(), 1)

	checker.CheckFunc = func(context.Context) (int, error) { return 0, errors.New("boom") }

	err := w.HandleCheckAlerts(context.Background(), worker.NewCheckAlertsTask())
	rq.Error(err)
	rq.ErrorIs(err, asynq.SkipRetry)
}

func TestAlertScannerTasks(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	w := worker.NewAlertScanner(&worker.AlertCheckerMock{}, 30*time.Second)

	periodic := w.PeriodicTask()
	rq.Equal("@every 30s", periodic.Cronspec)
	rq.Equal(worker.TypeCheckAlerts, periodic.Task.Type())

	h := w.Handler()
	rq.Equal(worker.TypeCheckAlerts, h.Pattern)
	rq.NotNil(h.Handle)
}

func TestAlertScannerRun(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)

	checker := &worker.AlertCheckerMock{
		CheckFunc: func(context.Context) (int, error) {
			calls <- struct{}{}

			return 0, nil
		},
	}

	done := make(chan error, 1)

	go func() { done <- worker.NewAlertScanner(checker, 10*time.Millisecond).Run(ctx) }()

	for range 3 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			rq.FailNow("scanner did not tick")
		}
	}

	cancel()

	select {
	case err := <-done:
		rq.NoError(err)
	case <-time.After(time.Second):
		rq.FailNow("scanner did not stop")
	}
}
