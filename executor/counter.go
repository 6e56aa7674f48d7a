package executor

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

const (
	ns500 = 500 * time.Nanosecond
)

type counter struct {
	n atomic.Int64
}

func (c *counter) incr() int64 {
	return c.n.Add(1)
}

func (c *counter) decr() int64 {
	return c.n.Add(-1)
}

func (c *counter) value() int64 {
	return c.n.Load()
}

// waitDownTo 等待计数不大于 n，ctx 结束时返回其错误。
func (c *counter) waitDownTo(ctx context.Context, n int64) (err error) {
	times := 10
	for c.value() > n {
		if err = ctx.Err(); err != nil {
			return
		}
		time.Sleep(ns500)
		times--
		if times < 1 {
			times = 10
			runtime.Gosched()
		}
	}
	return
}
