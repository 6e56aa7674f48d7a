package option

// Map
// Some 时以 fn 转换值，Null 原样传递且不调用 fn。
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return Null[U]()
	}
	return Some(fn(o.value))
}

// MapOr
// Some 时返回 fn 的结果，否则返回 value。
func MapOr[T any, U any](o Option[T], value U, fn func(T) U) U {
	if !o.some {
		return value
	}
	return fn(o.value)
}

// MapOrElse
// Some 时返回 fn 的结果，否则返回 fallback 的结果。
func MapOrElse[T any, U any](o Option[T], fallback func() U, fn func(T) U) U {
	if !o.some {
		return fallback()
	}
	return fn(o.value)
}

// AndThen
// Some 时返回 fn 的结果，Null 时短路。
func AndThen[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return Null[U]()
	}
	return fn(o.value)
}

// And
// o 为 Some 时返回 other，否则返回 Null。
func And[T any, U any](o Option[T], other Option[U]) Option[U] {
	if !o.some {
		return Null[U]()
	}
	return other
}

// Flatten
// 展开嵌套的可选值
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return Null[T]()
	}
	return o.value
}

// Pair
// Zip 的结果
type Pair[T any, U any] struct {
	First  T
	Second U
}

// Zip
// 双方都为 Some 时返回成对的值，否则返回 Null。
func Zip[T any, U any](o Option[T], other Option[U]) Option[Pair[T, U]] {
	return ZipWith(o, other, func(t T, u U) Pair[T, U] {
		return Pair[T, U]{First: t, Second: u}
	})
}

// ZipWith
// 双方都为 Some 时返回 fn 的结果，否则返回 Null。
func ZipWith[T any, U any, V any](o Option[T], other Option[U], fn func(T, U) V) Option[V] {
	if !o.some || !other.some {
		return Null[V]()
	}
	return Some(fn(o.value, other.value))
}

// Unzip
// Zip 的逆操作
func Unzip[T any, U any](o Option[Pair[T, U]]) (Option[T], Option[U]) {
	if !o.some {
		return Null[T](), Null[U]()
	}
	return Some(o.value.First), Some(o.value.Second)
}

// Contains
// 是否为 Some 且值等于 value。
func Contains[T comparable](o Option[T], value T) bool {
	return o.some && o.value == value
}
