package executor

import (
	"context"
	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/wraps/pkg/spin"
	"runtime"
	"sync/atomic"
	"time"
)

// Executors
// 有上限的执行器
//
// 每个任务独占一个 goroutine，同时运行的 goroutine 不超过 MaxGoroutines。
type Executors interface {
	Executor
	// TryExecute
	// 尝试执行一个任务，如果 goroutine 已满载，则返回 ErrBusy。
	TryExecute(ctx context.Context, task Task) (err error)
	// Goroutines
	// 当前 goroutine 数量
	Goroutines() (n int64)
	// Available
	// 是否运行中且存在剩余 goroutine
	Available() bool
	// Running
	// 是否运行中
	Running() bool
	// Close
	// 优雅关闭，等待已提交的任务结束。
	// 如果需要关闭超时，则使用 WithCloseTimeout 进行设置。
	Close() (err error)
}

// New
// 创建有上限的执行器
func New(options ...Option) (Executors, error) {
	opts := Options{
		MaxGoroutines: defaultMaxGoroutines,
		CloseTimeout:  0,
	}
	for _, option := range options {
		if optErr := option(&opts); optErr != nil {
			return nil, errors.New("new executor failed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(optErr))
		}
	}
	exec := &bounded{
		maxGoroutines: int64(opts.MaxGoroutines),
		locker:        spin.New(),
		running:       new(atomic.Bool),
		goroutines:    new(counter),
		closeTimeout:  opts.CloseTimeout,
	}
	exec.running.Store(true)
	return exec, nil
}

type bounded struct {
	maxGoroutines int64
	locker        *spin.Locker
	running       *atomic.Bool
	goroutines    *counter
	closeTimeout  time.Duration
}

func (exec *bounded) TryExecute(ctx context.Context, task Task) (err error) {
	if task == nil {
		err = ErrNilTask
		return
	}
	if !exec.running.Load() {
		err = errors.From(ErrClosed, errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
		return
	}
	if !exec.acquire() {
		err = errors.From(ErrBusy, errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
		return
	}
	exec.submit(ctx, task)
	return
}

func (exec *bounded) Execute(ctx context.Context, task Task) (err error) {
	if task == nil {
		err = ErrNilTask
		return
	}
	times := 10
	for {
		if exec.acquire() {
			exec.submit(ctx, task)
			break
		}
		if !exec.running.Load() {
			err = errors.From(ErrClosed, errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
			return
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.From(ErrBusy, errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(ctxErr))
			return
		}
		time.Sleep(ns500)
		times--
		if times < 0 {
			times = 10
			runtime.Gosched()
		}
	}
	return
}

func (exec *bounded) Goroutines() int64 {
	return exec.goroutines.value()
}

func (exec *bounded) Available() bool {
	return exec.running.Load() && exec.goroutines.value() < exec.maxGoroutines
}

func (exec *bounded) Running() bool {
	return exec.running.Load()
}

func (exec *bounded) Close() (err error) {
	if ok := exec.running.CompareAndSwap(true, false); !ok {
		err = errors.From(ErrClosed, errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
		return
	}
	ctx := context.Background()
	if closeTimeout := exec.closeTimeout; closeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, closeTimeout)
		defer cancel()
	}
	if waitErr := exec.goroutines.waitDownTo(ctx, 0); waitErr != nil {
		err = errors.From(ErrCloseFailed, errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(waitErr))
		return
	}
	return
}

func (exec *bounded) acquire() (ok bool) {
	exec.locker.Lock()
	if ok = exec.Available(); ok {
		exec.goroutines.incr()
	}
	exec.locker.Unlock()
	return
}

func (exec *bounded) submit(ctx context.Context, task Task) {
	go func(ctx context.Context, task Task, exec *bounded) {
		defer exec.goroutines.decr()
		task.Handle(ctx)
	}(ctx, task, exec)
}
