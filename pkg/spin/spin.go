package spin

import (
	"runtime"
	"sync/atomic"
)

const maxBackoff = 16

// New
// 创建自旋锁
func New() *Locker {
	return new(Locker)
}

// Locker
// 自旋锁，只适合保护极短的临界区（几次字段读写）。
//
// 零值可用。
type Locker struct {
	n atomic.Int32
}

// Lock
// 加锁，失败时以指数退避让出处理器。
func (sl *Locker) Lock() {
	backoff := 1
	for !sl.n.CompareAndSwap(0, 1) {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// TryLock
// 尝试加锁，不等待。
func (sl *Locker) TryLock() bool {
	return sl.n.CompareAndSwap(0, 1)
}

// Unlock
// 解锁
func (sl *Locker) Unlock() {
	sl.n.Store(0)
}
