package quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitAndReserveNoLimits(t *testing.T) {
	r := NewRegistry(0, 0)
	for i := 0; i < 10; i++ {
		ok, err := r.WaitAndReserve(context.Background(), "gemini")
		assert.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestDailyLimitExhausts(t *testing.T) {
	r := NewRegistry(0, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := r.WaitAndReserve(ctx, "gemini")
		assert.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := r.WaitAndReserve(ctx, "gemini")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDailyCounterResetsOnNewDay(t *testing.T) {
	current := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	r := NewRegistry(0, 1).WithClock(func() time.Time { return current })
	ctx := context.Background()

	ok, _ := r.WaitAndReserve(ctx, "gemini")
	assert.True(t, ok)
	ok, _ = r.WaitAndReserve(ctx, "gemini")
	assert.False(t, ok)

	current = current.Add(2 * time.Minute) // past midnight
	ok, _ = r.WaitAndReserve(ctx, "gemini")
	assert.True(t, ok)
}

func TestLimitersAreIndependentPerName(t *testing.T) {
	r := NewRegistry(0, 1)
	ctx := context.Background()

	ok, _ := r.WaitAndReserve(ctx, "summarize")
	assert.True(t, ok)
	ok, _ = r.WaitAndReserve(ctx, "summarize")
	assert.False(t, ok)

	ok, _ = r.WaitAndReserve(ctx, "translate")
	assert.True(t, ok)
}

func TestIntervalSpacingBlocks(t *testing.T) {
	// 1200 requests/minute -> 50ms interval, short enough to wait for
	r := NewRegistry(1200, 0)
	ctx := context.Background()

	start := time.Now()
	ok, err := r.WaitAndReserve(ctx, "gemini")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.WaitAndReserve(ctx, "gemini")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestCancelledContextAbortsWait(t *testing.T) {
	r := NewRegistry(1, 0) // 60s interval
	ctx := context.Background()

	ok, _ := r.WaitAndReserve(ctx, "gemini")
	assert.True(t, ok)

	cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	ok, err := r.WaitAndReserve(cancelCtx, "gemini")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
