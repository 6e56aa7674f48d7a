package async

import (
	"context"
	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/wraps/executor"
	"sync/atomic"
)

// Promise
// 许诺一个未来。
//
// 许诺只能完成一次，之后的 Complete 、Succeed 、Fail 、Cancel 都会被忽略。
// Future 返回的值只能被成功等待一次。
type Promise[T any] interface {
	// Complete
	// 完成
	Complete(v T, err error)
	// Succeed
	// 成功完成
	Succeed(v T)
	// Fail
	// 错误完成
	Fail(cause error)
	// Cancel
	// 取消许诺，未来会是一个 Canceled 错误。
	Cancel()
	// Future
	// 未来
	Future() Awaitable[T]
}

// Make
// 创建一个许诺
func Make[T any]() Promise[T] {
	return &promise[T]{
		ch: make(chan outcome[T], 1),
	}
}

type outcome[T any] struct {
	v   T
	err error
}

const (
	promiseIdle int32 = iota
	promiseAwaiting
	promiseConsumed
)

type promise[T any] struct {
	ch    chan outcome[T]
	end   atomic.Bool
	state atomic.Int32
}

func (p *promise[T]) Complete(v T, err error) {
	if !p.end.CompareAndSwap(false, true) {
		return
	}
	p.ch <- outcome[T]{v: v, err: err}
}

func (p *promise[T]) Succeed(v T) {
	p.Complete(v, nil)
}

func (p *promise[T]) Fail(cause error) {
	var zero T
	p.Complete(zero, cause)
}

func (p *promise[T]) Cancel() {
	p.Fail(errors.From(Canceled, errors.WithMeta(errMetaPkgKey, errMetaPkgVal)))
}

func (p *promise[T]) Future() Awaitable[T] {
	return p
}

// Await
// 只有一个等待者；它的 ctx 结束时许诺回到未被等待的状态，可以再次等待。
func (p *promise[T]) Await(ctx context.Context) (v T, err error) {
	if !p.state.CompareAndSwap(promiseIdle, promiseAwaiting) {
		err = alreadyAwaited()
		return
	}
	select {
	case o := <-p.ch:
		p.state.Store(promiseConsumed)
		v, err = o.v, o.err
		return
	default:
	}
	select {
	case o := <-p.ch:
		p.state.Store(promiseConsumed)
		v, err = o.v, o.err
	case <-ctx.Done():
		p.state.Store(promiseIdle)
		err = ctx.Err()
	}
	return
}

// GoOptions
// Go 的选项
type GoOptions struct {
	Executor executor.Executor
}

// GoOption
// Go 的选项函数
type GoOption func(options *GoOptions)

// WithExecutor
// 指定执行器，默认使用 ctx 上关联的执行器（见 executor.From）。
func WithExecutor(exec executor.Executor) GoOption {
	return func(options *GoOptions) {
		options.Executor = exec
	}
}

// Go
// 立即在执行器上启动 fn，返回其一次性的结果。
//
// 执行器拒绝任务时（例如已关闭或繁忙），结果为对应的错误。
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error), options ...GoOption) Awaitable[T] {
	opts := GoOptions{}
	for _, option := range options {
		option(&opts)
	}
	exec := opts.Executor
	if exec == nil {
		exec = executor.From(ctx)
	}
	p := Make[T]()
	err := exec.Execute(ctx, executor.TaskFunc(func(ctx context.Context) {
		v, fnErr := fn(ctx)
		p.Complete(v, fnErr)
	}))
	if err != nil {
		p.Fail(errors.New("go failed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(err)))
	}
	return p.Future()
}
