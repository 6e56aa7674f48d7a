package async

import (
	"context"
	"golang.org/x/sync/errgroup"
)

// All
// 同时等待多个可等待值，按顺序返回全部结果。
//
// 任何一个失败时，其余等待者的 ctx 被取消，返回第一个错误。
// 每个成员在单独的协程中等待，成员自身的计算在哪里运行由成员决定。
func All[T any](awaitables ...Awaitable[T]) Future[[]T] {
	return NewFuture(Defer(func(ctx context.Context) (vv []T, err error) {
		values := make([]T, len(awaitables))
		g, gctx := errgroup.WithContext(ctx)
		for i, awaitable := range awaitables {
			g.Go(func() (awaitErr error) {
				values[i], awaitErr = awaitable.Await(gctx)
				return
			})
		}
		if err = g.Wait(); err != nil {
			return
		}
		vv = values
		return
	}))
}
