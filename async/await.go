// Package async
// 可等待值与未来。
//
// Awaitable 是尚未完成的计算。Promise 、Defer 与 Go 给出的是一次性的值，第二次 Await 返回 ErrAlreadyAwaited；
// ReAwaitable 把任意 Awaitable 变为可以被任意多次、任意多个协程等待的值；
// Future 、FutureOption 、FutureResult 与 FutureEither 在其之上提供与同步类型一致的组合子。
package async

import (
	"context"
	"sync/atomic"
)

// Awaitable
// 未决的计算
type Awaitable[T any] interface {
	// Await
	// 等待结果。ctx 结束时返回 ctx.Err()。
	Await(ctx context.Context) (v T, err error)
}

// AwaitableFunc
// 函数形式的 Awaitable，每次 Await 都会调用函数。
type AwaitableFunc[T any] func(ctx context.Context) (T, error)

func (fn AwaitableFunc[T]) Await(ctx context.Context) (T, error) {
	return fn(ctx)
}

// Defer
// 惰性的一次性计算。
//
// 第一次 Await 时在调用者的协程中以其 ctx 运行 fn，之后的 Await 返回 ErrAlreadyAwaited。
func Defer[T any](fn func(ctx context.Context) (T, error)) Awaitable[T] {
	return &deferred[T]{fn: fn}
}

type deferred[T any] struct {
	fn       func(ctx context.Context) (T, error)
	consumed atomic.Bool
}

func (d *deferred[T]) Await(ctx context.Context) (v T, err error) {
	if !d.consumed.CompareAndSwap(false, true) {
		err = alreadyAwaited()
		return
	}
	fn := d.fn
	d.fn = nil
	v, err = fn(ctx)
	return
}

// SucceedImmediately
// 立刻成功的值，可以重复等待。
func SucceedImmediately[T any](v T) Awaitable[T] {
	return Immediately(v, nil)
}

// FailedImmediately
// 立刻失败的值，可以重复等待。
func FailedImmediately[T any](cause error) Awaitable[T] {
	var zero T
	return Immediately(zero, cause)
}

// Immediately
// 立刻完成的值，可以重复等待。
func Immediately[T any](v T, cause error) Awaitable[T] {
	return &immediately[T]{v: v, cause: cause}
}

type immediately[T any] struct {
	v     T
	cause error
}

func (i *immediately[T]) Await(_ context.Context) (v T, err error) {
	v, err = i.v, i.cause
	return
}
