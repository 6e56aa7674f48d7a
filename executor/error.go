package executor

import "github.com/brickingsoft/errors"

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "executor"
)

var (
	// ErrClosed 执行器已关闭
	ErrClosed = errors.Define("executor has been closed")
	// ErrCloseFailed 关闭执行器失败（一般是关闭超时引发）
	ErrCloseFailed = errors.Define("executor close failed")
	// ErrBusy 无可用协程
	ErrBusy = errors.Define("executor is busy")
	// ErrNilTask 任务为 nil
	ErrNilTask = errors.Define("task is nil")
)

// IsClosed
// 是否为 ErrClosed 错误
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsBusy
// 是否为 ErrBusy 错误
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}
