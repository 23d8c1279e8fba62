package workers_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/presswork/internal/workers"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsEveryJob(t *testing.T) {
	p := workers.New(3)
	require.Equal(t, 3, p.Size())

	var n atomic.Int64
	for i := 0; i < 100; i++ {
		require.NoError(t, p.Submit(context.Background(), func() { n.Add(1) }))
	}
	p.Close()
	require.Equal(t, int64(100), n.Load())
}

func TestPool_DefaultSize(t *testing.T) {
	p := workers.New(0)
	defer p.Close()
	require.Positive(t, p.Size())
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p := workers.New(1)
	p.Close()
	p.Close()
	require.ErrorIs(t, p.Submit(context.Background(), func() {}), workers.ErrClosed)
}

func TestPool_CancelledContext(t *testing.T) {
	p := workers.New(1)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Submit(ctx, func() {}), context.Canceled)
}
