// Package scheduler runs the periodic refresh jobs of the watch command.
package scheduler

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/etnz/watchfolio/logctx"
	"github.com/go-co-op/gocron/v2"
)

// Task is a job body. A failed run is logged and retried at the next tick.
type Task func(ctx context.Context) error

type Scheduler struct {
	scheduler gocron.Scheduler
}

func New() (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: scheduler}, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

// Stop waits for running jobs to complete.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

// Every runs fn every interval, starting now. Runs never overlap: a run that
// outlasts the interval delays the next one.
func (s *Scheduler) Every(name string, interval time.Duration, fn Task) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(taskWithRecover(fn, name)),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		slog.Error("Scheduler creating job error", slog.String("jobName", name), slog.String("err", err.Error()))
	}
	return err
}

func taskWithRecover(fn Task, jobName string) func(ctx context.Context) {
	return func(ctx context.Context) {
		ctx = logctx.WithRequestID(ctx)
		defer func() {
			if r := recover(); r != nil {
				slog.Error(
					"Panic recovered in scheduler job",
					slog.String("jobName", jobName),
					slog.Any("panic", r),
					slog.String("stacktrace", string(debug.Stack())),
					logctx.Attr(ctx),
				)
			}
		}()

		slog.Debug("job start", slog.String("jobName", jobName), logctx.Attr(ctx))

		if err := fn(ctx); err != nil {
			slog.Error("job failed", slog.String("jobName", jobName), slog.Any("error", err), logctx.Attr(ctx))
		} else {
			slog.Debug("job completed", slog.String("jobName", jobName), logctx.Attr(ctx))
		}
	}
}
