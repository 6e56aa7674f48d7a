// Package either
// 左右两个独立类型的标签联合，不带有成功或失败的含义。
//
// Either 不参与 Early 提前返回协议。
package either

import (
	"fmt"
	"github.com/brickingsoft/wraps"
	"github.com/brickingsoft/wraps/option"
	"github.com/brickingsoft/wraps/result"
)

const (
	variantLeft  = "left"
	variantRight = "right"
)

// Either
// 左或右。零值为 Left 且值为 L 的零值。
type Either[L any, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left
// 左值
func Left[L any, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right
// 右值
func Right[L any, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft
// 是否为左
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsLeftAnd
// 是否为左且值满足 predicate。
func (e Either[L, R]) IsLeftAnd(predicate func(L) bool) bool {
	return !e.isRight && predicate(e.left)
}

// IsRight
// 是否为右
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsRightAnd
// 是否为右且值满足 predicate。
func (e Either[L, R]) IsRightAnd(predicate func(R) bool) bool {
	return e.isRight && predicate(e.right)
}

// Left
// 投影为 Option[L]
func (e Either[L, R]) Left() option.Option[L] {
	return option.FromOk(e.left, !e.isRight)
}

// Right
// 投影为 Option[R]
func (e Either[L, R]) Right() option.Option[R] {
	return option.FromOk(e.right, e.isRight)
}

// UnwrapLeft
// 返回左值，为右时 panic（wraps.ErrUnwrapFailed）。
func (e Either[L, R]) UnwrapLeft() L {
	if e.isRight {
		panic(wraps.NewUnwrapError("UnwrapLeft", variantRight, nil))
	}
	return e.left
}

// UnwrapRight
// 返回右值，为左时 panic（wraps.ErrUnwrapFailed）。
func (e Either[L, R]) UnwrapRight() R {
	if !e.isRight {
		panic(wraps.NewUnwrapError("UnwrapRight", variantLeft, nil))
	}
	return e.right
}

// ExpectLeft
// 返回左值，为右时以 message panic。
func (e Either[L, R]) ExpectLeft(message string) L {
	if e.isRight {
		panic(wraps.NewExpectError("ExpectLeft", variantRight, message, nil))
	}
	return e.left
}

// ExpectRight
// 返回右值，为左时以 message panic。
func (e Either[L, R]) ExpectRight(message string) R {
	if !e.isRight {
		panic(wraps.NewExpectError("ExpectRight", variantLeft, message, nil))
	}
	return e.right
}

// LeftOr
// 返回左值，为右时返回 value。
func (e Either[L, R]) LeftOr(value L) L {
	if e.isRight {
		return value
	}
	return e.left
}

// LeftOrElse
// 返回左值，为右时返回 fn 的结果。
func (e Either[L, R]) LeftOrElse(fn func() L) L {
	if e.isRight {
		return fn()
	}
	return e.left
}

// RightOr
// 返回右值，为左时返回 value。
func (e Either[L, R]) RightOr(value R) R {
	if !e.isRight {
		return value
	}
	return e.right
}

// RightOrElse
// 返回右值，为左时返回 fn 的结果。
func (e Either[L, R]) RightOrElse(fn func() R) R {
	if !e.isRight {
		return fn()
	}
	return e.right
}

// InspectLeft
// 为左时以值调用 fn，返回 e 本身。
func (e Either[L, R]) InspectLeft(fn func(L)) Either[L, R] {
	if !e.isRight {
		fn(e.left)
	}
	return e
}

// InspectRight
// 为右时以值调用 fn，返回 e 本身。
func (e Either[L, R]) InspectRight(fn func(R)) Either[L, R] {
	if e.isRight {
		fn(e.right)
	}
	return e
}

// Flip
// 交换左右
func (e Either[L, R]) Flip() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapLeft
// 为左时以 fn 转换左值，右原样传递。
func MapLeft[L any, M any, R any](e Either[L, R], fn func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M, R](e.right)
	}
	return Left[M, R](fn(e.left))
}

// MapRight
// 为右时以 fn 转换右值，左原样传递。
func MapRight[L any, R any, S any](e Either[L, R], fn func(R) S) Either[L, S] {
	if !e.isRight {
		return Left[L, S](e.left)
	}
	return Right[L, S](fn(e.right))
}

// MapEither
// 按标签恰好调用 onLeft 或 onRight 之一。
func MapEither[L any, R any, M any, S any](e Either[L, R], onLeft func(L) M, onRight func(R) S) Either[M, S] {
	if e.isRight {
		return Right[M, S](onRight(e.right))
	}
	return Left[M, S](onLeft(e.left))
}

// Fold
// 把两个变体折叠为同一类型。
func Fold[L any, R any, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// LeftAndThen
// 为左时返回 fn 的结果，右原样传递。
func LeftAndThen[L any, M any, R any](e Either[L, R], fn func(L) Either[M, R]) Either[M, R] {
	if e.isRight {
		return Right[M, R](e.right)
	}
	return fn(e.left)
}

// RightAndThen
// 为右时返回 fn 的结果，左原样传递。
func RightAndThen[L any, R any, S any](e Either[L, R], fn func(R) Either[L, S]) Either[L, S] {
	if !e.isRight {
		return Left[L, S](e.left)
	}
	return fn(e.right)
}

// FromResult
// Ok 转换为左，Err 转换为右。
func FromResult[T any, E any](r result.Result[T, E]) Either[T, E] {
	value, err, ok := r.Unpack()
	if ok {
		return Left[T, E](value)
	}
	return Right[T, E](err)
}

// IntoResult
// 左转换为 Ok，右转换为 Err。右值为 nil 时 panic（wraps.ErrMissingError）。
func IntoResult[L any, R any](e Either[L, R]) result.Result[L, R] {
	if e.isRight {
		return result.Err[L](e.right)
	}
	return result.Ok[L, R](e.left)
}
