package modules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

// AsynqPeriodicTask enqueues Task on every tick of Cronspec
// (e.g. "@every 30s").
type AsynqPeriodicTask struct {
	Cronspec string
	Task     *asynq.Task
	Options  []asynq.Option
}

type AsynqScheduler struct {
	Redis asynq.RedisClientOpt
}

func (s AsynqScheduler) Run(
	ctx context.Context,
	g *errgroup.Group,
	tasks ...AsynqPeriodicTask,
) error {
	scheduler := asynq.NewScheduler(s.Redis, &asynq.SchedulerOpts{
		Location: time.UTC,
	})

	for _, t := range tasks {
		if _, err := scheduler.Register(t.Cronspec, t.Task, t.Options...); err != nil {
			return fmt.Errorf("scheduler.Register(%s): %w", t.Task.Type(), err)
		}
	}

	g.Go(func() error {
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("asynqScheduler.Start: %w", err)
		}

		logger(ctx).Info("asynq scheduler started", slog.Int("tasks", len(tasks)))

		<-ctx.Done()

		scheduler.Shutdown()

		logger(ctx).Info("asynq scheduler stopped")

		return nil
	})

	return nil
}
