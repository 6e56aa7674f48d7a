package wraps

import (
	stderrors "errors"
	"fmt"
	"github.com/brickingsoft/errors"
)

// ErrorTypes
// 需要拦截的错误集合，供 Wrap 系列装饰器使用。
//
// 集合不可为空，零值不可用，必须通过 On、OnType 或 AnyError 构建。
type ErrorTypes struct {
	matchers []func(err error) bool
}

// AnyError
// 拦截所有非 nil 的错误，是 Wrap 系列的默认集合。
var AnyError = ErrorTypes{
	matchers: []func(err error) bool{
		func(err error) bool { return err != nil },
	},
}

// On
// 通过标准库 errors.Is 匹配给出的错误，至少需要一个。
//
// 只按错误链上的身份匹配，文本相同的不同错误不会被拦截。
func On(head error, tail ...error) ErrorTypes {
	targets := make([]error, 0, 1+len(tail))
	targets = append(targets, head)
	targets = append(targets, tail...)
	matchers := make([]func(err error) bool, 0, len(targets))
	for i, target := range targets {
		if target == nil {
			panic(errors.From(
				ErrInvalidErrorTypes,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithWrap(fmt.Errorf("target %d is nil", i)),
			))
		}
		matchers = append(matchers, func(err error) bool {
			return stderrors.Is(err, target)
		})
	}
	return ErrorTypes{matchers: matchers}
}

// OnType
// 通过标准库 errors.As 匹配类型为 E 的错误。
func OnType[E error]() ErrorTypes {
	return ErrorTypes{
		matchers: []func(err error) bool{
			func(err error) bool {
				var target E
				return stderrors.As(err, &target)
			},
		},
	}
}

// Or
// 合并两个集合
func (types ErrorTypes) Or(other ErrorTypes) ErrorTypes {
	matchers := make([]func(err error) bool, 0, len(types.matchers)+len(other.matchers))
	matchers = append(matchers, types.matchers...)
	matchers = append(matchers, other.matchers...)
	return ErrorTypes{matchers: matchers}
}

// Len
// 匹配器数量
func (types ErrorTypes) Len() int {
	return len(types.matchers)
}

// Validate
// 检查集合是否可用
func (types ErrorTypes) Validate() error {
	if len(types.matchers) == 0 {
		return errors.From(ErrInvalidErrorTypes, errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(errors.Define("empty error types")))
	}
	return nil
}

// Match
// err 是否属于集合，nil 永远不匹配。
func (types ErrorTypes) Match(err error) bool {
	if err == nil {
		return false
	}
	for _, matcher := range types.matchers {
		if matcher(err) {
			return true
		}
	}
	return false
}
