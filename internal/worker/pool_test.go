package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_PreservesOrder(t *testing.T) {
	p := NewPool[int, int](3, func(_ context.Context, n int) (int, error) {
		return n * n, nil
	})

	tasks := p.Execute(context.Background(), []int{1, 2, 3, 4, 5, 6, 7})
	require.Len(t, tasks, 7)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.Input)
		assert.Equal(t, (i+1)*(i+1), task.Result)
		assert.NoError(t, task.Err)
	}
}

func TestPool_PerTaskErrors(t *testing.T) {
	errOdd := errors.New("odd")
	p := NewPool[int, string](2, func(_ context.Context, n int) (string, error) {
		if n%2 == 1 {
			return "", errOdd
		}
		return "even", nil
	})

	tasks := p.Execute(context.Background(), []int{1, 2, 3})
	assert.ErrorIs(t, tasks[0].Err, errOdd)
	assert.Equal(t, "even", tasks[1].Result)
	assert.ErrorIs(t, tasks[2].Err, errOdd)
}

func TestPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	p := NewPool[int, int](0, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	tasks := p.Execute(ctx, []int{1, 2, 3})
	require.Len(t, tasks, 3)
	skipped := 0
	for _, task := range tasks {
		if errors.Is(task.Err, context.Canceled) {
			skipped++
		}
	}
	assert.Equal(t, 3-int(calls.Load()), skipped)
}

func TestPool_Empty(t *testing.T) {
	p := NewPool[int, int](4, func(_ context.Context, n int) (int, error) { return n, nil })
	assert.Empty(t, p.Execute(context.Background(), nil))
}
