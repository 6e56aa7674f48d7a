package async

import (
	"context"
	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/wraps/option"
	"github.com/brickingsoft/wraps/pkg/spin"
)

// Outcome
// ReAwaitable 的缓存状态
type Outcome int

const (
	// OutcomePending 尚未完成（可能尚未开始）
	OutcomePending Outcome = iota
	// OutcomeSucceeded 成功
	OutcomeSucceeded
	// OutcomeFailed 以错误结束
	OutcomeFailed
	// OutcomeCanceled 被取消（Canceled 或 context.Canceled）
	OutcomeCanceled
	// OutcomePanicked 计算 panic，之后每次观察都会以同一个值 panic
	OutcomePanicked
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeCanceled:
		return "canceled"
	case OutcomePanicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// ReAwaitable
// 可以重复等待的值。
//
// 第一次 Await 以调用者的 ctx 驱动底层计算，且只驱动一次；并发的和之后的 Await 等待同一个结果。
// 结果（值、错误、取消或 panic）被缓存，之后每次观察都得到同样的结果。
// 正在等待的观察者自己的 ctx 结束时返回 ctx.Err()，不影响缓存。
//
// 必须由 NewReAwaitable 创建。
type ReAwaitable[T any] struct {
	locker    *spin.Locker
	awaitable Awaitable[T]
	started   bool
	done      chan struct{}
	outcome   Outcome
	v         T
	err       error
	panicked  any
}

// NewReAwaitable
// 包装 awaitable。awaitable 已经是 *ReAwaitable 时原样返回。
func NewReAwaitable[T any](awaitable Awaitable[T]) *ReAwaitable[T] {
	if r, ok := awaitable.(*ReAwaitable[T]); ok {
		return r
	}
	return &ReAwaitable[T]{
		locker:    spin.New(),
		awaitable: awaitable,
		done:      make(chan struct{}),
	}
}

// WrapReAwaitable
// 把返回一次性计算的 fn 转换为返回 *ReAwaitable 的函数，每次调用得到一个新的 ReAwaitable。
func WrapReAwaitable[T any](fn func(ctx context.Context) (T, error)) func() *ReAwaitable[T] {
	return func() *ReAwaitable[T] {
		return NewReAwaitable(Defer(fn))
	}
}

// Await
// 等待结果
func (r *ReAwaitable[T]) Await(ctx context.Context) (v T, err error) {
	r.locker.Lock()
	first := !r.started
	r.started = true
	r.locker.Unlock()

	if first {
		r.drive(ctx)
	} else if err = r.wait(ctx); err != nil {
		return
	}
	v, err = r.observe()
	return
}

func (r *ReAwaitable[T]) drive(ctx context.Context) {
	completed := false
	defer func() {
		if p := recover(); p != nil {
			r.outcome = OutcomePanicked
			r.panicked = p
		} else if !completed {
			// runtime.Goexit
			r.outcome = OutcomeFailed
			r.err = errors.From(ErrAbandoned, errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
		}
		r.awaitable = nil
		close(r.done)
	}()
	v, err := r.awaitable.Await(ctx)
	r.v, r.err = v, err
	switch {
	case err == nil:
		r.outcome = OutcomeSucceeded
	case IsCanceled(err):
		r.outcome = OutcomeCanceled
	default:
		r.outcome = OutcomeFailed
	}
	completed = true
}

// wait 已缓存的结果优先于 ctx 的结束。
func (r *ReAwaitable[T]) wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	default:
	}
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *ReAwaitable[T]) observe() (v T, err error) {
	if r.outcome == OutcomePanicked {
		panic(r.panicked)
	}
	v, err = r.v, r.err
	return
}

// Done
// 结果缓存后关闭的通道
func (r *ReAwaitable[T]) Done() <-chan struct{} {
	return r.done
}

// Outcome
// 当前的缓存状态，不会阻塞。
func (r *ReAwaitable[T]) Outcome() Outcome {
	select {
	case <-r.done:
		return r.outcome
	default:
		return OutcomePending
	}
}

// Cached
// 成功时的缓存值，其它状态为 Null。
func (r *ReAwaitable[T]) Cached() option.Option[T] {
	if r.Outcome() != OutcomeSucceeded {
		return option.Null[T]()
	}
	return option.Some(r.v)
}

// Err
// 失败或取消时的缓存错误，其它状态为 nil。
func (r *ReAwaitable[T]) Err() error {
	switch r.Outcome() {
	case OutcomeFailed, OutcomeCanceled:
		return r.err
	default:
		return nil
	}
}
