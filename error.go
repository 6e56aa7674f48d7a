package wraps

import (
	"fmt"
	"github.com/brickingsoft/errors"
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "wraps"
)

var (
	// ErrUnwrapFailed
	// 在不匹配的变体上取值，例如对 Null 调用 Unwrap。
	ErrUnwrapFailed = errors.Define("unwrap failed")
	// ErrEarlyOutsideBoundary
	// 在没有对应边界的情况下调用了 Early。
	ErrEarlyOutsideBoundary = errors.Define("early used outside of its boundary")
	// ErrMissingError
	// 构建 Err 变体时没有给出错误内容。
	ErrMissingError = errors.Define("error variant requires an error payload")
	// ErrInvalidErrorTypes
	// 错误类型集合为空或包含 nil。
	ErrInvalidErrorTypes = errors.Define("invalid error types")
)

// IsUnwrapFailed
// 是否为 ErrUnwrapFailed 错误
func IsUnwrapFailed(err error) bool {
	if errors.Is(err, ErrUnwrapFailed) {
		return true
	}
	var v *UnwrapError
	return errors.As(err, &v)
}

// IsEarlyOutsideBoundary
// 是否为 ErrEarlyOutsideBoundary 错误
func IsEarlyOutsideBoundary(err error) bool {
	return errors.Is(err, ErrEarlyOutsideBoundary)
}

// IsMissingError
// 是否为 ErrMissingError 错误
func IsMissingError(err error) bool {
	return errors.Is(err, ErrMissingError)
}

// IsInvalidErrorTypes
// 是否为 ErrInvalidErrorTypes 错误
func IsInvalidErrorTypes(err error) bool {
	return errors.Is(err, ErrInvalidErrorTypes)
}

// UnwrapError
// 取值失败时 panic 的值。
//
// Payload 为另一个变体所携带的内容（如 Err 的错误），Null 时为 nil。
// 当 Payload 本身是 error 时，errors.Is 可以穿透到它。
type UnwrapError struct {
	Err     error
	Method  string
	Variant string
	Message string
	Payload any
}

// NewUnwrapError
// 构建 UnwrapError
func NewUnwrapError(method string, variant string, payload any) *UnwrapError {
	return &UnwrapError{
		Err:     ErrUnwrapFailed,
		Method:  method,
		Variant: variant,
		Payload: payload,
	}
}

// NewExpectError
// 构建带有自定义信息的 UnwrapError，用于 Expect 系列。
func NewExpectError(method string, variant string, message string, payload any) *UnwrapError {
	e := NewUnwrapError(method, variant, payload)
	e.Message = message
	return e
}

func (e *UnwrapError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("called `%s` on %s", e.Method, e.Variant)
	}
	if e.Payload == nil {
		return "wraps: " + msg
	}
	return fmt.Sprintf("wraps: %s: %v", msg, e.Payload)
}

func (e *UnwrapError) Unwrap() []error {
	errs := []error{e.Err}
	if cause, ok := e.Payload.(error); ok && cause != nil {
		errs = append(errs, cause)
	}
	return errs
}

// MissingError
// 构建 ErrMissingError 派生错误，typeName 为错误内容的类型名。
func MissingError(typeName string) error {
	return errors.From(
		ErrMissingError,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithWrap(fmt.Errorf("nil payload of type %s", typeName)),
	)
}
