package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsJobImmediately(t *testing.T) {
	scheduler := NewScheduler()
	ran := make(chan struct{}, 1)

	scheduler.AddJob("test-job", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	scheduler.Start()
	defer scheduler.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestSchedulerRunsAllJobs(t *testing.T) {
	scheduler := NewScheduler()
	var first, second atomic.Int32

	scheduler.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	scheduler.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	scheduler.Start()
	scheduler.Stop()

	// Stop waits for the in-flight first runs to finish.
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestSchedulerStopCancelsRunningJob(t *testing.T) {
	scheduler := NewScheduler()
	done := make(chan struct{})

	scheduler.AddJob("blocking", time.Hour, func(ctx context.Context) error {
		<-ctx.Done()
		close(done)
		return ctx.Err()
	})

	scheduler.Start()
	go scheduler.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job context was not cancelled on stop")
	}
}
