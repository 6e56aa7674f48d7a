// Package result
// 成功或失败的结果。
//
// Result[T, E] 要么是 Ok 并包含值，要么是 Err 并包含错误。
// Err 的错误内容必须真实存在：以 nil（接口、指针、映射、切片、通道、函数）构建 Err 会立即 panic。
// 零值为 Ok 且值为 T 的零值。
package result

import (
	"fmt"
	"github.com/brickingsoft/wraps"
	"github.com/brickingsoft/wraps/internal/nilness"
	"github.com/brickingsoft/wraps/option"
	"iter"
)

const (
	variantOk  = "ok"
	variantErr = "err"
)

// Result
// 结果
type Result[T any, E any] struct {
	value  T
	err    E
	failed bool
}

// Ok
// 成功的结果
func Ok[T any, E any](value T) Result[T, E] {
	return Result[T, E]{value: value}
}

// Err
// 失败的结果，err 为 nil 时 panic（wraps.ErrMissingError）。
func Err[T any, E any](err E) Result[T, E] {
	if nilness.Is(err) {
		panic(wraps.MissingError(nilness.TypeName[E]()))
	}
	return Result[T, E]{err: err, failed: true}
}

// From
// 从 Go 惯用的 (T, error) 构建。
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// Pair
// 转换为 Go 惯用的 (T, error)
func Pair[T any](r Result[T, error]) (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// FromOption
// Some 转换为 Ok，Null 转换为 Err(err)。
func FromOption[T any, E any](o option.Option[T], err E) Result[T, E] {
	value, ok := o.Get()
	if !ok {
		return Err[T](err)
	}
	return Ok[T, E](value)
}

// FromOptionElse
// 同 FromOption，错误由 fn 惰性给出。
func FromOptionElse[T any, E any](o option.Option[T], fn func() E) Result[T, E] {
	value, ok := o.Get()
	if !ok {
		return Err[T](fn())
	}
	return Ok[T, E](value)
}

// FromPointer
// 指针非 nil 时为 Ok，否则为 Err(err)。
func FromPointer[T any, E any](p *T, err E) Result[T, E] {
	return FromOption(option.FromPointer(p), err)
}

// IsOk
// 是否为 Ok
func (r Result[T, E]) IsOk() bool {
	return !r.failed
}

// IsOkAnd
// 是否为 Ok 且值满足 predicate。
func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return !r.failed && predicate(r.value)
}

// IsErr
// 是否为 Err
func (r Result[T, E]) IsErr() bool {
	return r.failed
}

// IsErrAnd
// 是否为 Err 且错误满足 predicate。
func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return r.failed && predicate(r.err)
}

// Unpack
// 拆出值与错误，ok 表示是否为 Ok。
func (r Result[T, E]) Unpack() (value T, err E, ok bool) {
	value, err, ok = r.value, r.err, !r.failed
	return
}

// Ok
// 投影为 Option[T]，丢弃错误。
func (r Result[T, E]) Ok() option.Option[T] {
	if r.failed {
		return option.Null[T]()
	}
	return option.Some(r.value)
}

// Err
// 投影为 Option[E]，丢弃值。
func (r Result[T, E]) Err() option.Option[E] {
	if !r.failed {
		return option.Null[E]()
	}
	return option.Some(r.err)
}

// Unwrap
// 返回值，Err 时 panic（wraps.ErrUnwrapFailed），panic 的值携带错误的描述。
func (r Result[T, E]) Unwrap() T {
	if r.failed {
		panic(wraps.NewUnwrapError("Unwrap", variantErr, r.err))
	}
	return r.value
}

// Expect
// 返回值，Err 时以 message 与错误 panic。
func (r Result[T, E]) Expect(message string) T {
	if r.failed {
		panic(wraps.NewExpectError("Expect", variantErr, message, r.err))
	}
	return r.value
}

// UnwrapErr
// 返回错误，Ok 时 panic（wraps.ErrUnwrapFailed）。
func (r Result[T, E]) UnwrapErr() E {
	if !r.failed {
		panic(wraps.NewUnwrapError("UnwrapErr", variantOk, r.value))
	}
	return r.err
}

// ExpectErr
// 返回错误，Ok 时以 message panic。
func (r Result[T, E]) ExpectErr(message string) E {
	if !r.failed {
		panic(wraps.NewExpectError("ExpectErr", variantOk, message, r.value))
	}
	return r.err
}

// UnwrapOr
// 返回值，Err 时返回 value。
func (r Result[T, E]) UnwrapOr(value T) T {
	if r.failed {
		return value
	}
	return r.value
}

// UnwrapOrElse
// 返回值，Err 时返回 fn(err)。
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.failed {
		return fn(r.err)
	}
	return r.value
}

// UnwrapOrZero
// 返回值，Err 时返回零值。
func (r Result[T, E]) UnwrapOrZero() T {
	if r.failed {
		var zero T
		return zero
	}
	return r.value
}

// UnwrapErrOr
// 返回错误，Ok 时返回 err。
func (r Result[T, E]) UnwrapErrOr(err E) E {
	if !r.failed {
		return err
	}
	return r.err
}

// Inspect
// Ok 时以值调用 fn，返回 r 本身。
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if !r.failed {
		fn(r.value)
	}
	return r
}

// InspectErr
// Err 时以错误调用 fn，返回 r 本身。
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if r.failed {
		fn(r.err)
	}
	return r
}

// Or
// r 为 Ok 时返回 r，否则返回 other。
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if !r.failed {
		return r
	}
	return other
}

// Flip
// 交换 Ok 与 Err。
//
// Ok 的值会成为错误内容，值为 nil 时 panic（wraps.ErrMissingError）。
func (r Result[T, E]) Flip() Result[E, T] {
	if r.failed {
		return Ok[E, T](r.err)
	}
	return Err[E](r.value)
}

// Iter
// 迭代，Ok 时产出一次值。
func (r Result[T, E]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !r.failed {
			yield(r.value)
		}
	}
}

// IterErr
// 迭代，Err 时产出一次错误。
func (r Result[T, E]) IterErr() iter.Seq[E] {
	return func(yield func(E) bool) {
		if r.failed {
			yield(r.err)
		}
	}
}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
