package option

import "github.com/brickingsoft/wraps"

// Wrap
// 把返回 (T, error) 的 fn 转换为返回 Option[T] 的函数。
//
// 任何错误都转换为 Null；返回值为 nil（指针、接口等）时同样为 Null，否则为 Some。
func Wrap[T any](fn func() (T, error)) func() Option[T] {
	wrapped := WrapOn(wraps.AnyError, fn)
	return func() Option[T] {
		o, _ := wrapped()
		return o
	}
}

// WrapOn
// 同 Wrap，但只把 types 匹配的错误转换为 Null。
//
// 不匹配的错误原样作为第二个返回值传出，此时 Option 为 Null 且不应使用。
// types 为空时立即 panic（wraps.ErrInvalidErrorTypes）。
func WrapOn[T any](types wraps.ErrorTypes, fn func() (T, error)) func() (Option[T], error) {
	if err := types.Validate(); err != nil {
		panic(err)
	}
	return func() (Option[T], error) {
		return wrap(types, fn)
	}
}

// WrapFunc
// 单参数版本的 Wrap
func WrapFunc[A any, T any](fn func(A) (T, error)) func(A) Option[T] {
	wrapped := WrapFuncOn(wraps.AnyError, fn)
	return func(a A) Option[T] {
		o, _ := wrapped(a)
		return o
	}
}

// WrapFuncOn
// 单参数版本的 WrapOn
func WrapFuncOn[A any, T any](types wraps.ErrorTypes, fn func(A) (T, error)) func(A) (Option[T], error) {
	if err := types.Validate(); err != nil {
		panic(err)
	}
	return func(a A) (Option[T], error) {
		return wrap(types, func() (T, error) {
			return fn(a)
		})
	}
}

func wrap[T any](types wraps.ErrorTypes, fn func() (T, error)) (o Option[T], err error) {
	value, fnErr := fn()
	if fnErr != nil {
		if !types.Match(fnErr) {
			err = fnErr
		}
		return
	}
	o = FromNullable(value)
	return
}
