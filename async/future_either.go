package async

import (
	"context"
	"github.com/brickingsoft/wraps/either"
	"github.com/brickingsoft/wraps/option"
)

// FutureEither
// 值为 either.Either[L, R] 的未来，组合子与 either.Either 一致。
type FutureEither[L any, R any] struct {
	future Future[either.Either[L, R]]
}

// NewFutureEither
// 包装 awaitable
func NewFutureEither[L any, R any](awaitable Awaitable[either.Either[L, R]]) FutureEither[L, R] {
	return FutureEither[L, R]{future: NewFuture(awaitable)}
}

// FutureLeft
// 已完成为 Left(v) 的未来
func FutureLeft[L any, R any](v L) FutureEither[L, R] {
	return NewFutureEither(SucceedImmediately(either.Left[L, R](v)))
}

// FutureRight
// 已完成为 Right(v) 的未来
func FutureRight[L any, R any](v R) FutureEither[L, R] {
	return NewFutureEither(SucceedImmediately(either.Right[L, R](v)))
}

// Await
// 等待结果
func (fe FutureEither[L, R]) Await(ctx context.Context) (either.Either[L, R], error) {
	return fe.future.Await(ctx)
}

// Future
// 底层的 Future
func (fe FutureEither[L, R]) Future() Future[either.Either[L, R]] {
	return fe.future
}

// IsLeft
// 是否为 Left
func (fe FutureEither[L, R]) IsLeft() Future[bool] {
	return Map(fe.future, func(e either.Either[L, R]) bool {
		return e.IsLeft()
	})
}

// IsRight
// 是否为 Right
func (fe FutureEither[L, R]) IsRight() Future[bool] {
	return Map(fe.future, func(e either.Either[L, R]) bool {
		return e.IsRight()
	})
}

// UnwrapLeft
// 返回左值，Right 时在等待者处 panic。
func (fe FutureEither[L, R]) UnwrapLeft() Future[L] {
	return Map(fe.future, func(e either.Either[L, R]) L {
		return e.UnwrapLeft()
	})
}

// UnwrapRight
// 返回右值，Left 时在等待者处 panic。
func (fe FutureEither[L, R]) UnwrapRight() Future[R] {
	return Map(fe.future, func(e either.Either[L, R]) R {
		return e.UnwrapRight()
	})
}

// Left
// 投影为 FutureOption[L]
func (fe FutureEither[L, R]) Left() FutureOption[L] {
	return FutureOption[L]{future: Map(fe.future, func(e either.Either[L, R]) option.Option[L] {
		return e.Left()
	})}
}

// Right
// 投影为 FutureOption[R]
func (fe FutureEither[L, R]) Right() FutureOption[R] {
	return FutureOption[R]{future: Map(fe.future, func(e either.Either[L, R]) option.Option[R] {
		return e.Right()
	})}
}

// InspectLeft
// Left 时以左值调用 fn。
func (fe FutureEither[L, R]) InspectLeft(fn func(L)) FutureEither[L, R] {
	return FutureEither[L, R]{future: Map(fe.future, func(e either.Either[L, R]) either.Either[L, R] {
		return e.InspectLeft(fn)
	})}
}

// InspectRight
// Right 时以右值调用 fn。
func (fe FutureEither[L, R]) InspectRight(fn func(R)) FutureEither[L, R] {
	return FutureEither[L, R]{future: Map(fe.future, func(e either.Either[L, R]) either.Either[L, R] {
		return e.InspectRight(fn)
	})}
}

// Flip
// 交换左右
func (fe FutureEither[L, R]) Flip() FutureEither[R, L] {
	return FutureEither[R, L]{future: Map(fe.future, func(e either.Either[L, R]) either.Either[R, L] {
		return e.Flip()
	})}
}

// MapLeft
// Left 时以 fn 转换左值。
func MapLeft[L any, M any, R any](fe FutureEither[L, R], fn func(L) M) FutureEither[M, R] {
	return FutureEither[M, R]{future: Map(fe.future, func(e either.Either[L, R]) either.Either[M, R] {
		return either.MapLeft(e, fn)
	})}
}

// MapLeftAwait
// Left 时以 fn 返回的可等待值的结果作为左值。
func MapLeftAwait[L any, M any, R any](fe FutureEither[L, R], fn func(L) Awaitable[M]) FutureEither[M, R] {
	return deriveEither[L, R, M, R](fe.future, func(ctx context.Context, e either.Either[L, R]) (either.Either[M, R], error) {
		if e.IsRight() {
			return either.Right[M](e.UnwrapRight()), nil
		}
		m, err := fn(e.UnwrapLeft()).Await(ctx)
		if err != nil {
			return either.Either[M, R]{}, err
		}
		return either.Left[M, R](m), nil
	})
}

// MapRight
// Right 时以 fn 转换右值。
func MapRight[L any, R any, S any](fe FutureEither[L, R], fn func(R) S) FutureEither[L, S] {
	return FutureEither[L, S]{future: Map(fe.future, func(e either.Either[L, R]) either.Either[L, S] {
		return either.MapRight(e, fn)
	})}
}

// MapRightAwait
// Right 时以 fn 返回的可等待值的结果作为右值。
func MapRightAwait[L any, R any, S any](fe FutureEither[L, R], fn func(R) Awaitable[S]) FutureEither[L, S] {
	return deriveEither[L, R, L, S](fe.future, func(ctx context.Context, e either.Either[L, R]) (either.Either[L, S], error) {
		if e.IsLeft() {
			return either.Left[L, S](e.UnwrapLeft()), nil
		}
		s, err := fn(e.UnwrapRight()).Await(ctx)
		if err != nil {
			return either.Either[L, S]{}, err
		}
		return either.Right[L](s), nil
	})
}

// MapEither
// 按所在一侧分别以 onLeft 或 onRight 转换。
func MapEither[L any, R any, M any, S any](fe FutureEither[L, R], onLeft func(L) M, onRight func(R) S) FutureEither[M, S] {
	return FutureEither[M, S]{future: Map(fe.future, func(e either.Either[L, R]) either.Either[M, S] {
		return either.MapEither(e, onLeft, onRight)
	})}
}

// FoldEither
// 按所在一侧以 onLeft 或 onRight 归约为一个值。
func FoldEither[L any, R any, T any](fe FutureEither[L, R], onLeft func(L) T, onRight func(R) T) Future[T] {
	return Map(fe.future, func(e either.Either[L, R]) T {
		return either.Fold(e, onLeft, onRight)
	})
}

// LeftAndThen
// Left 时为 fn 的结果，Right 原样传递。
func LeftAndThen[L any, M any, R any](fe FutureEither[L, R], fn func(L) either.Either[M, R]) FutureEither[M, R] {
	return FutureEither[M, R]{future: Map(fe.future, func(e either.Either[L, R]) either.Either[M, R] {
		return either.LeftAndThen(e, fn)
	})}
}

// RightAndThen
// Right 时为 fn 的结果，Left 原样传递。
func RightAndThen[L any, R any, S any](fe FutureEither[L, R], fn func(R) either.Either[L, S]) FutureEither[L, S] {
	return FutureEither[L, S]{future: Map(fe.future, func(e either.Either[L, R]) either.Either[L, S] {
		return either.RightAndThen(e, fn)
	})}
}

func deriveEither[L any, R any, M any, S any](src Awaitable[either.Either[L, R]], step func(ctx context.Context, e either.Either[L, R]) (either.Either[M, S], error)) FutureEither[M, S] {
	return FutureEither[M, S]{future: derive[either.Either[L, R], either.Either[M, S]](src, step)}
}
