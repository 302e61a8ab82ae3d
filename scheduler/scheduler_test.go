package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/etnz/watchfolio/logctx"
)

func TestScheduler_Every(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	ran := make(chan string, 10)
	err = s.Every("refresh", time.Hour, func(ctx context.Context) error {
		ran <- logctx.RequestID(ctx)
		return nil
	})
	if err != nil {
		t.Fatalf("Every() unexpected error: %v", err)
	}
	s.Start()
	defer s.Stop()

	// The first run does not wait for the interval.
	select {
	case id := <-ran:
		if id == "" {
			t.Error("job context has no request id")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run immediately")
	}
}

func TestScheduler_Recovers(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	done := make(chan struct{}, 10)
	_ = s.Every("panics", time.Hour, func(ctx context.Context) error {
		defer func() { done <- struct{}{} }()
		panic("boom")
	})
	_ = s.Every("fails", time.Hour, func(ctx context.Context) error {
		defer func() { done <- struct{}{} }()
		return errors.New("boom")
	})
	s.Start()

	for range 2 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("jobs did not run")
		}
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop() unexpected error: %v", err)
	}
}
