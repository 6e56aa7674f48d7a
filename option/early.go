package option

import "github.com/brickingsoft/wraps"

// signal 是 Early 在 Null 上 panic 的值，只由 Catch 系列边界回收。
//
// 逃出所有边界时它本身就是 wraps.ErrEarlyOutsideBoundary 错误。
type signal struct{}

func (*signal) Error() string {
	return "wraps: option.Early used outside of option.Catch"
}

func (*signal) Unwrap() error {
	return wraps.ErrEarlyOutsideBoundary
}

var nullSignal = &signal{}

// Early
// 模拟 `?` 运算符。
//
// Some 时返回值；Null 时不再返回，控制直接转移到最近的 Catch 边界，该边界以 Null 作为结果。
// 没有边界时以 wraps.ErrEarlyOutsideBoundary panic。
func (o Option[T]) Early() T {
	if !o.some {
		panic(nullSignal)
	}
	return o.value
}

// Catch
// 建立 Early 的边界并运行 body。
//
// body 正常结束时原样返回其结果；body 内 Early 短路时返回 Null。
// 其它 panic（包括 result.Early 的短路）原样向上传递。
func Catch[T any](body func() Option[T]) (o Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*signal); ok {
				o = Null[T]()
				return
			}
			panic(r)
		}
	}()
	o = body()
	return
}

// CatchSome
// 同 Catch，body 直接返回值，正常结束时包装为 Some。
func CatchSome[T any](body func() T) Option[T] {
	return Catch(func() Option[T] {
		return Some(body())
	})
}

// Early
// 装饰 fn，使其每次调用都处于 Catch 边界之内。
func Early[A any, T any](fn func(A) Option[T]) func(A) Option[T] {
	return func(a A) Option[T] {
		return Catch(func() Option[T] {
			return fn(a)
		})
	}
}
