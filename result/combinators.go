package result

// Map
// Ok 时以 fn 转换值，Err 原样传递且不调用 fn。
func Map[T any, U any, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.failed {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr
// Err 时以 fn 转换错误，Ok 原样传递且不调用 fn。
func MapErr[T any, E any, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if !r.failed {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// MapOr
// Ok 时返回 fn 的结果，否则返回 value。
func MapOr[T any, U any, E any](r Result[T, E], value U, fn func(T) U) U {
	if r.failed {
		return value
	}
	return fn(r.value)
}

// MapOrElse
// Ok 时返回 fn 的结果，否则返回 fallback(err)。
func MapOrElse[T any, U any, E any](r Result[T, E], fallback func(E) U, fn func(T) U) U {
	if r.failed {
		return fallback(r.err)
	}
	return fn(r.value)
}

// AndThen
// Ok 时返回 fn 的结果，Err 时短路。
func AndThen[T any, U any, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.failed {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// And
// r 为 Ok 时返回 other，否则返回 r 的错误。
func And[T any, U any, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.failed {
		return Err[U](r.err)
	}
	return other
}

// OrElse
// Err 时以 fn(err) 恢复，Ok 原样传递。
func OrElse[T any, E any, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if !r.failed {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}

// Flatten
// 展开嵌套的结果
func Flatten[T any, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.failed {
		return Err[T](r.err)
	}
	return r.value
}
