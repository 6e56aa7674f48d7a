package async

import (
	"context"
	"github.com/brickingsoft/wraps/option"
	"github.com/brickingsoft/wraps/result"
)

// FutureOption
// 值为 option.Option[T] 的未来，组合子与 option.Option 一致。
//
// 等待时的错误（底层计算失败、ctx 结束）与 Option 的 Null 相互独立，错误总是原样传递。
type FutureOption[T any] struct {
	future Future[option.Option[T]]
}

// NewFutureOption
// 包装 awaitable
func NewFutureOption[T any](awaitable Awaitable[option.Option[T]]) FutureOption[T] {
	return FutureOption[T]{future: NewFuture(awaitable)}
}

// FutureSome
// 已完成为 Some(v) 的未来
func FutureSome[T any](v T) FutureOption[T] {
	return NewFutureOption(SucceedImmediately(option.Some(v)))
}

// FutureNull
// 已完成为 Null 的未来
func FutureNull[T any]() FutureOption[T] {
	return NewFutureOption(SucceedImmediately(option.Null[T]()))
}

// Await
// 等待结果
func (fo FutureOption[T]) Await(ctx context.Context) (option.Option[T], error) {
	return fo.future.Await(ctx)
}

// Future
// 底层的 Future
func (fo FutureOption[T]) Future() Future[option.Option[T]] {
	return fo.future
}

// IsSome
// 是否为 Some
func (fo FutureOption[T]) IsSome() Future[bool] {
	return Map(fo.future, func(o option.Option[T]) bool {
		return o.IsSome()
	})
}

// IsSomeAnd
// 是否为 Some 且值满足 predicate。
func (fo FutureOption[T]) IsSomeAnd(predicate func(T) bool) Future[bool] {
	return Map(fo.future, func(o option.Option[T]) bool {
		return o.IsSomeAnd(predicate)
	})
}

// IsNull
// 是否为 Null
func (fo FutureOption[T]) IsNull() Future[bool] {
	return Map(fo.future, func(o option.Option[T]) bool {
		return o.IsNull()
	})
}

// Unwrap
// 返回值，Null 时在等待者处 panic，与 option.Option.Unwrap 相同。
func (fo FutureOption[T]) Unwrap() Future[T] {
	return Map(fo.future, func(o option.Option[T]) T {
		return o.Unwrap()
	})
}

// Expect
// 返回值，Null 时以 message 在等待者处 panic。
func (fo FutureOption[T]) Expect(message string) Future[T] {
	return Map(fo.future, func(o option.Option[T]) T {
		return o.Expect(message)
	})
}

// UnwrapOr
// 返回值，Null 时返回 value。
func (fo FutureOption[T]) UnwrapOr(value T) Future[T] {
	return Map(fo.future, func(o option.Option[T]) T {
		return o.UnwrapOr(value)
	})
}

// UnwrapOrElse
// 返回值，Null 时返回 fn 的结果。
func (fo FutureOption[T]) UnwrapOrElse(fn func() T) Future[T] {
	return Map(fo.future, func(o option.Option[T]) T {
		return o.UnwrapOrElse(fn)
	})
}

// UnwrapOrElseAwait
// 返回值，Null 时等待 fn 返回的可等待值。
func (fo FutureOption[T]) UnwrapOrElseAwait(fn func() Awaitable[T]) Future[T] {
	return derive[option.Option[T], T](fo.future, func(ctx context.Context, o option.Option[T]) (T, error) {
		if v, ok := o.Get(); ok {
			return v, nil
		}
		return fn().Await(ctx)
	})
}

// Inspect
// Some 时以值调用 fn。
func (fo FutureOption[T]) Inspect(fn func(T)) FutureOption[T] {
	return fo.apply(func(o option.Option[T]) option.Option[T] {
		return o.Inspect(fn)
	})
}

// Filter
// Some 且值满足 predicate 时保持，否则为 Null。
func (fo FutureOption[T]) Filter(predicate func(T) bool) FutureOption[T] {
	return fo.apply(func(o option.Option[T]) option.Option[T] {
		return o.Filter(predicate)
	})
}

// Or
// Some 时保持，否则为 other 的结果。other 只在需要时被等待。
func (fo FutureOption[T]) Or(other FutureOption[T]) FutureOption[T] {
	return fo.OrElseAwait(func() Awaitable[option.Option[T]] {
		return other
	})
}

// OrElse
// Some 时保持，否则为 fn 的结果。
func (fo FutureOption[T]) OrElse(fn func() option.Option[T]) FutureOption[T] {
	return fo.apply(func(o option.Option[T]) option.Option[T] {
		return o.OrElse(fn)
	})
}

// OrElseAwait
// Some 时保持，否则等待 fn 返回的可等待值。
func (fo FutureOption[T]) OrElseAwait(fn func() Awaitable[option.Option[T]]) FutureOption[T] {
	return deriveOption[T, T](fo.future, func(ctx context.Context, o option.Option[T]) (option.Option[T], error) {
		if o.IsSome() {
			return o, nil
		}
		return fn().Await(ctx)
	})
}

// Xor
// 恰好一方为 Some 时为它，否则为 Null。两个未来都会被等待。
func (fo FutureOption[T]) Xor(other FutureOption[T]) FutureOption[T] {
	return deriveOption[T, T](fo.future, func(ctx context.Context, o option.Option[T]) (option.Option[T], error) {
		oo, err := other.Await(ctx)
		if err != nil {
			return option.Null[T](), err
		}
		return o.Xor(oo), nil
	})
}

func (fo FutureOption[T]) apply(fn func(option.Option[T]) option.Option[T]) FutureOption[T] {
	return FutureOption[T]{future: Map(fo.future, fn)}
}

// MapOption
// Some 时以 fn 转换值，Null 原样传递且不调用 fn。
func MapOption[T any, U any](fo FutureOption[T], fn func(T) U) FutureOption[U] {
	return FutureOption[U]{future: Map(fo.future, func(o option.Option[T]) option.Option[U] {
		return option.Map(o, fn)
	})}
}

// MapOptionAwait
// Some 时以 fn 返回的可等待值的结果作为值。
func MapOptionAwait[T any, U any](fo FutureOption[T], fn func(T) Awaitable[U]) FutureOption[U] {
	return deriveOption[T, U](fo.future, func(ctx context.Context, o option.Option[T]) (option.Option[U], error) {
		v, ok := o.Get()
		if !ok {
			return option.Null[U](), nil
		}
		u, err := fn(v).Await(ctx)
		if err != nil {
			return option.Null[U](), err
		}
		return option.Some(u), nil
	})
}

// AndThenOption
// Some 时为 fn 的结果，Null 时短路。
func AndThenOption[T any, U any](fo FutureOption[T], fn func(T) option.Option[U]) FutureOption[U] {
	return FutureOption[U]{future: Map(fo.future, func(o option.Option[T]) option.Option[U] {
		return option.AndThen(o, fn)
	})}
}

// AndThenOptionAwait
// Some 时为 fn 返回的可等待值的结果，Null 时短路。
func AndThenOptionAwait[T any, U any](fo FutureOption[T], fn func(T) Awaitable[option.Option[U]]) FutureOption[U] {
	return deriveOption[T, U](fo.future, func(ctx context.Context, o option.Option[T]) (option.Option[U], error) {
		v, ok := o.Get()
		if !ok {
			return option.Null[U](), nil
		}
		return fn(v).Await(ctx)
	})
}

// OptionOkOr
// 转换为 FutureResult，Null 转换为 Err(err)。
func OptionOkOr[T any, E any](fo FutureOption[T], err E) FutureResult[T, E] {
	return FutureResult[T, E]{future: Map(fo.future, func(o option.Option[T]) result.Result[T, E] {
		return result.FromOption(o, err)
	})}
}

func deriveOption[T any, U any](src Awaitable[option.Option[T]], step func(ctx context.Context, o option.Option[T]) (option.Option[U], error)) FutureOption[U] {
	return FutureOption[U]{future: derive[option.Option[T], option.Option[U]](src, step)}
}
