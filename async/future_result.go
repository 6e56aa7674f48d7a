package async

import (
	"context"
	"github.com/brickingsoft/wraps/option"
	"github.com/brickingsoft/wraps/result"
)

// FutureResult
// 值为 result.Result[T, E] 的未来，组合子与 result.Result 一致。
//
// Result 的 Err 是值；等待时的错误（底层计算失败、ctx 结束）与之相互独立，总是原样传递。
type FutureResult[T any, E any] struct {
	future Future[result.Result[T, E]]
}

// NewFutureResult
// 包装 awaitable
func NewFutureResult[T any, E any](awaitable Awaitable[result.Result[T, E]]) FutureResult[T, E] {
	return FutureResult[T, E]{future: NewFuture(awaitable)}
}

// FutureOk
// 已完成为 Ok(v) 的未来
func FutureOk[T any, E any](v T) FutureResult[T, E] {
	return NewFutureResult(SucceedImmediately(result.Ok[T, E](v)))
}

// FutureErr
// 已完成为 Err(err) 的未来，err 为 nil 时 panic（wraps.ErrMissingError）。
func FutureErr[T any, E any](err E) FutureResult[T, E] {
	return NewFutureResult(SucceedImmediately(result.Err[T](err)))
}

// Await
// 等待结果
func (fr FutureResult[T, E]) Await(ctx context.Context) (result.Result[T, E], error) {
	return fr.future.Await(ctx)
}

// Future
// 底层的 Future
func (fr FutureResult[T, E]) Future() Future[result.Result[T, E]] {
	return fr.future
}

// IsOk
// 是否为 Ok
func (fr FutureResult[T, E]) IsOk() Future[bool] {
	return Map(fr.future, func(r result.Result[T, E]) bool {
		return r.IsOk()
	})
}

// IsOkAnd
// 是否为 Ok 且值满足 predicate。
func (fr FutureResult[T, E]) IsOkAnd(predicate func(T) bool) Future[bool] {
	return Map(fr.future, func(r result.Result[T, E]) bool {
		return r.IsOkAnd(predicate)
	})
}

// IsErr
// 是否为 Err
func (fr FutureResult[T, E]) IsErr() Future[bool] {
	return Map(fr.future, func(r result.Result[T, E]) bool {
		return r.IsErr()
	})
}

// IsErrAnd
// 是否为 Err 且错误满足 predicate。
func (fr FutureResult[T, E]) IsErrAnd(predicate func(E) bool) Future[bool] {
	return Map(fr.future, func(r result.Result[T, E]) bool {
		return r.IsErrAnd(predicate)
	})
}

// Unwrap
// 返回值，Err 时在等待者处 panic，与 result.Result.Unwrap 相同。
func (fr FutureResult[T, E]) Unwrap() Future[T] {
	return Map(fr.future, func(r result.Result[T, E]) T {
		return r.Unwrap()
	})
}

// Expect
// 返回值，Err 时以 message 在等待者处 panic。
func (fr FutureResult[T, E]) Expect(message string) Future[T] {
	return Map(fr.future, func(r result.Result[T, E]) T {
		return r.Expect(message)
	})
}

// UnwrapErr
// 返回错误，Ok 时在等待者处 panic。
func (fr FutureResult[T, E]) UnwrapErr() Future[E] {
	return Map(fr.future, func(r result.Result[T, E]) E {
		return r.UnwrapErr()
	})
}

// UnwrapOr
// 返回值，Err 时返回 value。
func (fr FutureResult[T, E]) UnwrapOr(value T) Future[T] {
	return Map(fr.future, func(r result.Result[T, E]) T {
		return r.UnwrapOr(value)
	})
}

// UnwrapOrElse
// 返回值，Err 时返回 fn(err)。
func (fr FutureResult[T, E]) UnwrapOrElse(fn func(E) T) Future[T] {
	return Map(fr.future, func(r result.Result[T, E]) T {
		return r.UnwrapOrElse(fn)
	})
}

// UnwrapOrElseAwait
// 返回值，Err 时等待 fn(err) 返回的可等待值。
func (fr FutureResult[T, E]) UnwrapOrElseAwait(fn func(E) Awaitable[T]) Future[T] {
	return derive[result.Result[T, E], T](fr.future, func(ctx context.Context, r result.Result[T, E]) (T, error) {
		v, e, ok := r.Unpack()
		if ok {
			return v, nil
		}
		return fn(e).Await(ctx)
	})
}

// Ok
// 投影为 FutureOption[T]，丢弃错误。
func (fr FutureResult[T, E]) Ok() FutureOption[T] {
	return FutureOption[T]{future: Map(fr.future, func(r result.Result[T, E]) option.Option[T] {
		return r.Ok()
	})}
}

// Err
// 投影为 FutureOption[E]，丢弃值。
func (fr FutureResult[T, E]) Err() FutureOption[E] {
	return FutureOption[E]{future: Map(fr.future, func(r result.Result[T, E]) option.Option[E] {
		return r.Err()
	})}
}

// Inspect
// Ok 时以值调用 fn。
func (fr FutureResult[T, E]) Inspect(fn func(T)) FutureResult[T, E] {
	return fr.apply(func(r result.Result[T, E]) result.Result[T, E] {
		return r.Inspect(fn)
	})
}

// InspectErr
// Err 时以错误调用 fn。
func (fr FutureResult[T, E]) InspectErr(fn func(E)) FutureResult[T, E] {
	return fr.apply(func(r result.Result[T, E]) result.Result[T, E] {
		return r.InspectErr(fn)
	})
}

// Or
// Ok 时保持，否则为 other 的结果。other 只在需要时被等待。
func (fr FutureResult[T, E]) Or(other FutureResult[T, E]) FutureResult[T, E] {
	return OrElseResultAwait(fr, func(E) Awaitable[result.Result[T, E]] {
		return other
	})
}

func (fr FutureResult[T, E]) apply(fn func(result.Result[T, E]) result.Result[T, E]) FutureResult[T, E] {
	return FutureResult[T, E]{future: Map(fr.future, fn)}
}

// MapResult
// Ok 时以 fn 转换值，Err 原样传递且不调用 fn。
func MapResult[T any, U any, E any](fr FutureResult[T, E], fn func(T) U) FutureResult[U, E] {
	return FutureResult[U, E]{future: Map(fr.future, func(r result.Result[T, E]) result.Result[U, E] {
		return result.Map(r, fn)
	})}
}

// MapResultAwait
// Ok 时以 fn 返回的可等待值的结果作为值。
func MapResultAwait[T any, U any, E any](fr FutureResult[T, E], fn func(T) Awaitable[U]) FutureResult[U, E] {
	return deriveResult[T, E, U, E](fr.future, func(ctx context.Context, r result.Result[T, E]) (result.Result[U, E], error) {
		v, e, ok := r.Unpack()
		if !ok {
			return result.Err[U](e), nil
		}
		u, err := fn(v).Await(ctx)
		if err != nil {
			return result.Result[U, E]{}, err
		}
		return result.Ok[U, E](u), nil
	})
}

// MapErr
// Err 时以 fn 转换错误，Ok 原样传递且不调用 fn。
func MapErr[T any, E any, F any](fr FutureResult[T, E], fn func(E) F) FutureResult[T, F] {
	return FutureResult[T, F]{future: Map(fr.future, func(r result.Result[T, E]) result.Result[T, F] {
		return result.MapErr(r, fn)
	})}
}

// MapErrAwait
// Err 时以 fn 返回的可等待值的结果作为错误。
func MapErrAwait[T any, E any, F any](fr FutureResult[T, E], fn func(E) Awaitable[F]) FutureResult[T, F] {
	return deriveResult[T, E, T, F](fr.future, func(ctx context.Context, r result.Result[T, E]) (result.Result[T, F], error) {
		v, e, ok := r.Unpack()
		if ok {
			return result.Ok[T, F](v), nil
		}
		f, err := fn(e).Await(ctx)
		if err != nil {
			return result.Result[T, F]{}, err
		}
		return result.Err[T](f), nil
	})
}

// AndThenResult
// Ok 时为 fn 的结果，Err 时短路。
func AndThenResult[T any, U any, E any](fr FutureResult[T, E], fn func(T) result.Result[U, E]) FutureResult[U, E] {
	return FutureResult[U, E]{future: Map(fr.future, func(r result.Result[T, E]) result.Result[U, E] {
		return result.AndThen(r, fn)
	})}
}

// AndThenResultAwait
// Ok 时为 fn 返回的可等待值的结果，Err 时短路。
func AndThenResultAwait[T any, U any, E any](fr FutureResult[T, E], fn func(T) Awaitable[result.Result[U, E]]) FutureResult[U, E] {
	return deriveResult[T, E, U, E](fr.future, func(ctx context.Context, r result.Result[T, E]) (result.Result[U, E], error) {
		v, e, ok := r.Unpack()
		if !ok {
			return result.Err[U](e), nil
		}
		return fn(v).Await(ctx)
	})
}

// OrElseResult
// Err 时为 fn(err) 的结果，Ok 原样传递。
func OrElseResult[T any, E any, F any](fr FutureResult[T, E], fn func(E) result.Result[T, F]) FutureResult[T, F] {
	return FutureResult[T, F]{future: Map(fr.future, func(r result.Result[T, E]) result.Result[T, F] {
		return result.OrElse(r, fn)
	})}
}

// OrElseResultAwait
// Err 时为 fn(err) 返回的可等待值的结果，Ok 原样传递。
func OrElseResultAwait[T any, E any, F any](fr FutureResult[T, E], fn func(E) Awaitable[result.Result[T, F]]) FutureResult[T, F] {
	return deriveResult[T, E, T, F](fr.future, func(ctx context.Context, r result.Result[T, E]) (result.Result[T, F], error) {
		v, e, ok := r.Unpack()
		if ok {
			return result.Ok[T, F](v), nil
		}
		return fn(e).Await(ctx)
	})
}

// Raising
// 转换为 Future[T]：Ok 为值，Err 成为等待时的错误。
func Raising[T any](fr FutureResult[T, error]) Future[T] {
	return derive[result.Result[T, error], T](fr.future, func(_ context.Context, r result.Result[T, error]) (T, error) {
		return result.Pair(r)
	})
}

func deriveResult[T any, E any, U any, F any](src Awaitable[result.Result[T, E]], step func(ctx context.Context, r result.Result[T, E]) (result.Result[U, F], error)) FutureResult[U, F] {
	return FutureResult[U, F]{future: derive[result.Result[T, E], result.Result[U, F]](src, step)}
}
