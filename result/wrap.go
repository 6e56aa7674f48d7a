package result

import (
	"github.com/brickingsoft/wraps"
	"github.com/dsnet/try"
)

// Wrap
// 把返回 (T, error) 的 fn 转换为返回 Result[T, error] 的函数，任何错误都转换为 Err。
func Wrap[T any](fn func() (T, error)) func() Result[T, error] {
	wrapped := WrapOn(wraps.AnyError, fn)
	return func() Result[T, error] {
		r, _ := wrapped()
		return r
	}
}

// WrapOn
// 同 Wrap，但只把 types 匹配的错误转换为 Err。
//
// 不匹配的错误原样作为第二个返回值传出，此时 Result 不应使用。
// types 为空时立即 panic（wraps.ErrInvalidErrorTypes）。
func WrapOn[T any](types wraps.ErrorTypes, fn func() (T, error)) func() (Result[T, error], error) {
	if err := types.Validate(); err != nil {
		panic(err)
	}
	return func() (Result[T, error], error) {
		return wrap(types, fn)
	}
}

// WrapFunc
// 单参数版本的 Wrap
func WrapFunc[A any, T any](fn func(A) (T, error)) func(A) Result[T, error] {
	wrapped := WrapFuncOn(wraps.AnyError, fn)
	return func(a A) Result[T, error] {
		r, _ := wrapped(a)
		return r
	}
}

// WrapFuncOn
// 单参数版本的 WrapOn
func WrapFuncOn[A any, T any](types wraps.ErrorTypes, fn func(A) (T, error)) func(A) (Result[T, error], error) {
	if err := types.Validate(); err != nil {
		panic(err)
	}
	return func(a A) (Result[T, error], error) {
		return wrap(types, func() (T, error) {
			return fn(a)
		})
	}
}

func wrap[T any](types wraps.ErrorTypes, fn func() (T, error)) (r Result[T, error], err error) {
	value, fnErr := fn()
	if fnErr != nil {
		if types.Match(fnErr) {
			r = Err[T](fnErr)
			return
		}
		err = fnErr
		return
	}
	r = Ok[T, error](value)
	return
}

// Try
// 运行以 github.com/dsnet/try 方式抛出错误的 body，抛出的错误转换为 Err。
//
//	r := result.Try(func() int {
//		return try.E1(strconv.Atoi(s))
//	})
//
// 其它 panic 原样向上传递。
func Try[T any](body func() T) (r Result[T, error]) {
	var err error
	defer func() {
		if err != nil {
			r = Err[T](err)
		}
	}()
	defer try.Handle(&err)
	r = Ok[T, error](body())
	return
}
