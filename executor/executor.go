// Package executor
// 宿主调度器的适配点。
//
// wraps 本身不是并发运行时：async.Go 等需要立即启动计算的地方，通过 context.Context 上关联的 Executor 提交任务。
// 没有关联时使用 Go，即每个任务一个 goroutine。
package executor

import "context"

// Task
// 任务
type Task interface {
	// Handle
	// 执行任务
	Handle(ctx context.Context)
}

// TaskFunc
// 函数形式的任务
type TaskFunc func(ctx context.Context)

func (fn TaskFunc) Handle(ctx context.Context) {
	fn(ctx)
}

// Executor
// 执行器
type Executor interface {
	// Execute
	// 执行一个任务。返回错误时任务不会被执行。
	Execute(ctx context.Context, task Task) (err error)
}

// Go
// 默认执行器，每个任务启动一个 goroutine。
var Go Executor = goExecutor{}

type goExecutor struct{}

func (goExecutor) Execute(ctx context.Context, task Task) (err error) {
	if task == nil {
		err = ErrNilTask
		return
	}
	go task.Handle(ctx)
	return
}

type contextKey struct{}

// With
// 把 Executor 关联到 context.Context
func With(ctx context.Context, exec Executor) context.Context {
	return context.WithValue(ctx, contextKey{}, exec)
}

// TryFrom
// 从 context.Context 获取 Executor
func TryFrom(ctx context.Context) (Executor, bool) {
	exec, ok := ctx.Value(contextKey{}).(Executor)
	if ok && exec != nil {
		return exec, true
	}
	return nil, false
}

// From
// 从 context.Context 获取 Executor，没有关联时返回 Go。
func From(ctx context.Context) Executor {
	if exec, ok := TryFrom(ctx); ok {
		return exec
	}
	return Go
}

// Execute
// 使用 ctx 上关联的执行器执行一个任务。
func Execute(ctx context.Context, task Task) (err error) {
	if task == nil {
		err = ErrNilTask
		return
	}
	err = From(ctx).Execute(ctx, task)
	return
}
