package result

import (
	"fmt"
	"github.com/brickingsoft/wraps"
)

// signal 是 Early 在 Err 上 panic 的值，只由错误类型相同的 Catch 系列边界回收。
type signal[E any] struct {
	err E
}

func (s *signal[E]) Error() string {
	return fmt.Sprintf("wraps: result.Early used outside of result.Catch: %v", s.err)
}

func (s *signal[E]) Unwrap() error {
	return wraps.ErrEarlyOutsideBoundary
}

// Early
// 模拟 `?` 运算符。
//
// Ok 时返回值；Err 时不再返回，控制直接转移到最近的、错误类型同为 E 的 Catch 边界，该边界以这个 Err 作为结果。
// 没有边界时以 wraps.ErrEarlyOutsideBoundary panic。
func (r Result[T, E]) Early() T {
	if r.failed {
		panic(&signal[E]{err: r.err})
	}
	return r.value
}

// Catch
// 建立 Early 的边界并运行 body。
//
// body 正常结束时原样返回其结果；body 内错误类型为 E 的 Early 短路时返回对应的 Err。
// 其它 panic（包括 option.Early 以及其它错误类型的短路）原样向上传递。
func Catch[T any, E any](body func() Result[T, E]) (r Result[T, E]) {
	defer func() {
		if v := recover(); v != nil {
			if s, ok := v.(*signal[E]); ok {
				r = Err[T](s.err)
				return
			}
			panic(v)
		}
	}()
	r = body()
	return
}

// CatchOk
// 同 Catch，body 直接返回值，正常结束时包装为 Ok。
func CatchOk[T any, E any](body func() T) Result[T, E] {
	return Catch(func() Result[T, E] {
		return Ok[T, E](body())
	})
}

// Early
// 装饰 fn，使其每次调用都处于 Catch 边界之内。
func Early[A any, T any, E any](fn func(A) Result[T, E]) func(A) Result[T, E] {
	return func(a A) Result[T, E] {
		return Catch(func() Result[T, E] {
			return fn(a)
		})
	}
}
