package async

import (
	"context"
	"github.com/brickingsoft/wraps"
	"github.com/brickingsoft/wraps/option"
	"github.com/brickingsoft/wraps/result"
)

// WrapFuture
// 把 fn 转换为返回 Future 的函数。每次调用得到一个新的惰性未来，被等待时才运行 fn。
func WrapFuture[T any](fn func(ctx context.Context) (T, error)) func() Future[T] {
	return func() Future[T] {
		return NewFuture(Defer(fn))
	}
}

// WrapOption
// option.Wrap 的异步版本：任何错误都转换为 Null。
func WrapOption[T any](fn func(ctx context.Context) (T, error)) func() FutureOption[T] {
	return WrapOptionOn(wraps.AnyError, fn)
}

// WrapOptionOn
// option.WrapOn 的异步版本：只把 types 匹配的错误转换为 Null，不匹配的错误从 Await 原样返回。
//
// types 为空时立即 panic（wraps.ErrInvalidErrorTypes）。
func WrapOptionOn[T any](types wraps.ErrorTypes, fn func(ctx context.Context) (T, error)) func() FutureOption[T] {
	if err := types.Validate(); err != nil {
		panic(err)
	}
	return func() FutureOption[T] {
		return NewFutureOption(Defer(func(ctx context.Context) (option.Option[T], error) {
			return option.WrapOn(types, func() (T, error) {
				return fn(ctx)
			})()
		}))
	}
}

// WrapResult
// result.Wrap 的异步版本：任何错误都转换为 Err。
func WrapResult[T any](fn func(ctx context.Context) (T, error)) func() FutureResult[T, error] {
	return WrapResultOn(wraps.AnyError, fn)
}

// WrapResultOn
// result.WrapOn 的异步版本：只把 types 匹配的错误转换为 Err，不匹配的错误从 Await 原样返回。
//
// types 为空时立即 panic（wraps.ErrInvalidErrorTypes）。
func WrapResultOn[T any](types wraps.ErrorTypes, fn func(ctx context.Context) (T, error)) func() FutureResult[T, error] {
	if err := types.Validate(); err != nil {
		panic(err)
	}
	return func() FutureResult[T, error] {
		return NewFutureResult(Defer(func(ctx context.Context) (result.Result[T, error], error) {
			return result.WrapOn(types, func() (T, error) {
				return fn(ctx)
			})()
		}))
	}
}

// EarlyOption
// option.Catch 的异步版本。
//
// body 在被等待时运行，其中的 option.Option.Early 短路使结果为 Null。
// body 返回的错误从 Await 原样返回。
func EarlyOption[T any](body func(ctx context.Context) (option.Option[T], error)) FutureOption[T] {
	return NewFutureOption(Defer(func(ctx context.Context) (o option.Option[T], err error) {
		o = option.Catch(func() option.Option[T] {
			v, bodyErr := body(ctx)
			err = bodyErr
			return v
		})
		return
	}))
}

// EarlyResult
// result.Catch 的异步版本。
//
// body 在被等待时运行，其中错误类型为 E 的 result.Result.Early 短路使结果为对应的 Err。
// body 返回的错误从 Await 原样返回。
func EarlyResult[T any, E any](body func(ctx context.Context) (result.Result[T, E], error)) FutureResult[T, E] {
	return NewFutureResult(Defer(func(ctx context.Context) (r result.Result[T, E], err error) {
		r = result.Catch(func() result.Result[T, E] {
			v, bodyErr := body(ctx)
			err = bodyErr
			return v
		})
		return
	}))
}
