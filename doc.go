// Package wraps
// 有意义且安全的包装类型。
//
// 本包提供三个封闭的和类型及其组合子：
//
//   - option.Option 表示值的有无（Some / Null）
//   - result.Result 表示成功或带有类型化错误的失败（Ok / Err）
//   - either.Either 表示两个独立类型的标签联合（Left / Right）
//
// 以及：
//
//   - Early 提前返回协议，模拟 `?` 运算符，必须与对应的边界（option.Catch、result.Catch 等）配对使用
//   - async.ReAwaitable 可重复等待的包装，底层计算最多被驱动一次
//   - async.FutureOption、async.FutureResult、async.FutureEither 在未决计算上提升同样的组合子
//   - Wrap 系列装饰器，把返回 (T, error) 的函数转换为返回包装类型的函数
//
// 根包只包含共享的误用错误类型与 ErrorTypes 错误匹配集合。
package wraps
