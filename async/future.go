package async

import "context"

// Future
// 未来。
//
// 持有一个 ReAwaitable，所以可以被多次、并发地等待，底层计算只运行一次。
// 组合子是惰性的：它们返回新的 Future，在被等待时才等待上游。
//
// 零值不可用，须由 NewFuture 等函数创建。
type Future[T any] struct {
	reawaitable *ReAwaitable[T]
}

// NewFuture
// 包装 awaitable
func NewFuture[T any](awaitable Awaitable[T]) Future[T] {
	return Future[T]{reawaitable: NewReAwaitable(awaitable)}
}

// FromValue
// 已成功的未来
func FromValue[T any](v T) Future[T] {
	return NewFuture(SucceedImmediately(v))
}

// FromError
// 已失败的未来
func FromError[T any](cause error) Future[T] {
	return NewFuture(FailedImmediately[T](cause))
}

// Await
// 等待结果
func (f Future[T]) Await(ctx context.Context) (T, error) {
	return f.reawaitable.Await(ctx)
}

// ReAwaitable
// 底层的 ReAwaitable
func (f Future[T]) ReAwaitable() *ReAwaitable[T] {
	return f.reawaitable
}

// Map
// 成功时以 fn 转换值，错误原样传递。
func Map[T any, U any](f Future[T], fn func(T) U) Future[U] {
	return derive[T, U](f, func(_ context.Context, v T) (U, error) {
		return fn(v), nil
	})
}

// MapAwait
// 成功时以 fn 返回的可等待值的结果作为值。
func MapAwait[T any, U any](f Future[T], fn func(T) Awaitable[U]) Future[U] {
	return derive[T, U](f, func(ctx context.Context, v T) (U, error) {
		return fn(v).Await(ctx)
	})
}

// Then
// 成功时继续 fn 返回的未来。
func Then[T any, U any](f Future[T], fn func(T) Future[U]) Future[U] {
	return derive[T, U](f, func(ctx context.Context, v T) (U, error) {
		return fn(v).Await(ctx)
	})
}

// Flatten
// 展开嵌套的未来
func Flatten[T any](f Future[Future[T]]) Future[T] {
	return Then(f, func(inner Future[T]) Future[T] {
		return inner
	})
}

// derive 构建一个惰性的步骤：等待 src，成功时运行 step。
func derive[T any, U any](src Awaitable[T], step func(ctx context.Context, v T) (U, error)) Future[U] {
	return NewFuture(Defer(func(ctx context.Context) (u U, err error) {
		v, srcErr := src.Await(ctx)
		if srcErr != nil {
			err = srcErr
			return
		}
		u, err = step(ctx, v)
		return
	}))
}
