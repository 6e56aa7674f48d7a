package nilness

import "reflect"

// Is
// v 是否为宿主意义上的 nil：nil 接口，或值为 nil 的指针、映射、切片、通道、函数。
func Is(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// TypeName
// T 的类型名，用于错误信息。
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
