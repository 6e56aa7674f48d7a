package async_test

import (
	"context"
	"errors"
	"github.com/brickingsoft/wraps/async"
	"github.com/brickingsoft/wraps/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func panicValue(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return
}

func TestDefer(t *testing.T) {
	ctx := context.Background()
	calls := 0
	a := async.Defer(func(ctx context.Context) (int, error) {
		calls++
		return 1, nil
	})
	assert.Equal(t, 0, calls)

	v, err := a.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = a.Await(ctx)
	assert.True(t, async.IsAlreadyAwaited(err))
	assert.Equal(t, 1, calls)
}

func TestImmediately(t *testing.T) {
	ctx := context.Background()
	a := async.SucceedImmediately(2)
	for i := 0; i < 3; i++ {
		v, err := a.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	}
	cause := errors.New("failed")
	_, err := async.FailedImmediately[int](cause).Await(ctx)
	assert.Equal(t, cause, err)
}

func TestPromise_Succeed(t *testing.T) {
	ctx := context.Background()
	promise := async.Make[int]()
	go promise.Succeed(1)
	future := promise.Future()

	v, err := future.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = future.Await(ctx)
	assert.True(t, async.IsAlreadyAwaited(err))
}

func TestPromise_CompleteOnce(t *testing.T) {
	promise := async.Make[int]()
	promise.Fail(errors.New("first"))
	promise.Succeed(2)
	promise.Cancel()

	_, err := promise.Future().Await(context.Background())
	require.Error(t, err)
	assert.Equal(t, "first", err.Error())
}

func TestPromise_Cancel(t *testing.T) {
	promise := async.Make[int]()
	promise.Cancel()
	_, err := promise.Future().Await(context.Background())
	assert.True(t, async.IsCanceled(err))
	t.Log(err)
}

func TestPromise_AwaiterContextDone(t *testing.T) {
	promise := async.Make[int]()
	future := promise.Future()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := future.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// 等待者放弃后许诺仍可被等待
	promise.Succeed(3)
	v, err := future.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestGo(t *testing.T) {
	ctx := context.Background()
	a := async.Go(ctx, func(ctx context.Context) (string, error) {
		return "done", nil
	})
	v, err := a.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestGo_WithExecutor(t *testing.T) {
	exec, err := executor.New(executor.WithMaxGoroutines(4))
	require.NoError(t, err)

	ctx := executor.With(context.Background(), exec)
	a := async.Go(ctx, func(ctx context.Context) (int, error) {
		return 4, nil
	})
	v, err := a.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	require.NoError(t, exec.Close())

	a = async.Go(context.Background(), func(ctx context.Context) (int, error) {
		return 5, nil
	}, async.WithExecutor(exec))
	_, err = a.Await(context.Background())
	require.Error(t, err)
	assert.True(t, executor.IsClosed(err))
	t.Log(err)
}
