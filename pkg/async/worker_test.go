package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kentkonut/pkg/logger"
)

func TestWorker_RunsQueuedTasks(t *testing.T) {
	w := NewWorker(10, logger.NewNop())
	w.Start(2)

	var n atomic.Int32
	for i := 0; i < 5; i++ {
		assert.True(t, w.AddTask("count", func(ctx context.Context) error {
			n.Add(1)
			return nil
		}))
	}
	w.Stop()

	assert.Equal(t, int32(5), n.Load())
}

func TestWorker_Retries(t *testing.T) {
	w := NewWorker(1, logger.NewNop())
	w.Start(1)

	var calls atomic.Int32
	w.Submit(Task{
		Name:     "flaky",
		RetryMax: 1,
		Timeout:  5 * time.Second,
		Handler: func(ctx context.Context) error {
			if calls.Add(1) == 1 {
				return errors.New("first call fails")
			}
			return nil
		},
	})
	w.Stop()

	assert.Equal(t, int32(2), calls.Load())
}

func TestWorker_DropsWhenFull(t *testing.T) {
	w := NewWorker(1, logger.NewNop())

	assert.True(t, w.AddTask("a", func(ctx context.Context) error { return nil }))
	assert.False(t, w.AddTask("b", func(ctx context.Context) error { return nil }))

	w.Start(1)
	w.Stop()
}

func TestWorker_RejectsAfterStop(t *testing.T) {
	w := NewWorker(1, logger.NewNop())
	w.Start(1)
	w.Stop()
	w.Stop()

	assert.False(t, w.AddTask("late", func(ctx context.Context) error { return nil }))
}

func TestWorker_RecoversPanics(t *testing.T) {
	w := NewWorker(2, logger.NewNop())
	w.Start(1)

	var ran atomic.Bool
	w.AddTask("boom", func(ctx context.Context) error { panic("boom") })
	w.AddTask("after", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})
	w.Stop()

	assert.True(t, ran.Load())
}
