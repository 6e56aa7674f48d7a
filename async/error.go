package async

import (
	"context"
	stderrors "errors"
	"github.com/brickingsoft/errors"
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "async"
)

var (
	// Canceled 许诺被取消
	Canceled = errors.Define("promise canceled")
	// ErrAlreadyAwaited 一次性的可等待值被再次等待
	ErrAlreadyAwaited = errors.Define("awaitable has already been awaited")
	// ErrAbandoned 计算没有给出结果就结束了（例如 runtime.Goexit）
	ErrAbandoned = errors.Define("computation abandoned without an outcome")
)

// IsCanceled
// 是否为取消错误。
// 由：
// - Promise.Cancel 触发
// - context.Context 取消触发
//
// 只按错误链上的身份判断，文本为 "context canceled" 的普通错误仍是失败。
func IsCanceled(err error) bool {
	return stderrors.Is(err, Canceled) || stderrors.Is(err, context.Canceled)
}

// IsAlreadyAwaited
// 是否为 ErrAlreadyAwaited 错误，指 Promise 、Defer 等一次性的值被重复等待。
func IsAlreadyAwaited(err error) bool {
	return errors.Is(err, ErrAlreadyAwaited)
}

// IsAbandoned
// 是否为 ErrAbandoned 错误
func IsAbandoned(err error) bool {
	return errors.Is(err, ErrAbandoned)
}

func alreadyAwaited() error {
	return errors.From(ErrAlreadyAwaited, errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
}
