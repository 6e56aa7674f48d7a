// Package option
// 可选值。
//
// Option[T] 要么是 Some 并包含一个值，要么是 Null 不包含值。
// 零值为 Null。当 T 可比较时 Option[T] 可以直接使用 == 比较。
package option

import (
	"fmt"
	"github.com/brickingsoft/wraps"
	"github.com/brickingsoft/wraps/internal/nilness"
	"iter"
)

const (
	variantSome = "some"
	variantNull = "null"
)

// Option
// 可选值
type Option[T any] struct {
	value T
	some  bool
}

// Some
// 包含 value 的可选值
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// Null
// 不包含值的可选值
func Null[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer
// 从指针构建，nil 为 Null，否则为指向的值。
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return Null[T]()
	}
	return Some(*p)
}

// FromOk
// 从 comma-ok 形式构建，例如 v, ok := m[k]。
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return Null[T]()
	}
	return Some(value)
}

// FromNullable
// 从可能为 nil 的值构建。
//
// nil 接口，或值为 nil 的指针、映射、切片、通道、函数都视为 Null。
func FromNullable[T any](value T) Option[T] {
	if nilness.Is(value) {
		return Null[T]()
	}
	return Some(value)
}

// IsSome
// 是否为 Some
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsSomeAnd
// 是否为 Some 且值满足 predicate。
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.some && predicate(o.value)
}

// IsNull
// 是否为 Null
func (o Option[T]) IsNull() bool {
	return !o.some
}

// Get
// 转换为 comma-ok 形式
func (o Option[T]) Get() (value T, ok bool) {
	value, ok = o.value, o.some
	return
}

// Extract
// 转换为指针，Null 为 nil。
//
// 返回的指针指向一份拷贝，修改它不会影响 o。
func (o Option[T]) Extract() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Unwrap
// 返回值，Null 时 panic（wraps.ErrUnwrapFailed）。
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(wraps.NewUnwrapError("Unwrap", variantNull, nil))
	}
	return o.value
}

// Expect
// 返回值，Null 时以 message panic（wraps.ErrUnwrapFailed）。
func (o Option[T]) Expect(message string) T {
	if !o.some {
		panic(wraps.NewExpectError("Expect", variantNull, message, nil))
	}
	return o.value
}

// UnwrapOr
// 返回值，Null 时返回 value。
func (o Option[T]) UnwrapOr(value T) T {
	if !o.some {
		return value
	}
	return o.value
}

// UnwrapOrElse
// 返回值，Null 时返回 fn 的结果。
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.value
}

// UnwrapOrZero
// 返回值，Null 时返回零值。
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Inspect
// Some 时以值调用 fn，返回 o 本身。
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// Filter
// Some 且值满足 predicate 时返回 o，否则返回 Null。
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return Null[T]()
}

// Or
// o 为 Some 时返回 o，否则返回 other。
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse
// o 为 Some 时返回 o，否则返回 fn 的结果。
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Xor
// 恰好一方为 Some 时返回它，否则返回 Null。
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return Null[T]()
	}
}

// Iter
// 迭代，Some 时产出一次值，Null 时不产出。
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if !o.some {
		return "Null"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
