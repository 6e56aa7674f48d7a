package executor

import (
	"fmt"
	"time"
)

const (
	defaultMaxGoroutines = 256 * 1024
)

// Option
// 选项函数
type Option func(*Options) error

// Options
// 选项
type Options struct {
	// MaxGoroutines
	// 最大协程数
	MaxGoroutines int
	// CloseTimeout
	// 关闭超时时长，0 表示一直等待。
	CloseTimeout time.Duration
}

// WithMaxGoroutines
// 设置最大协程数
func WithMaxGoroutines(n int) Option {
	return func(o *Options) error {
		if n < 1 {
			return fmt.Errorf("executor: max goroutines must be positive, got %d", n)
		}
		o.MaxGoroutines = n
		return nil
	}
}

// WithCloseTimeout
// 设置关闭超时时长
func WithCloseTimeout(timeout time.Duration) Option {
	return func(o *Options) error {
		if timeout < 1 {
			timeout = 0
		}
		o.CloseTimeout = timeout
		return nil
	}
}
