// Package xlog 基于 log/slog 提供 xipctl 的结构化日志。
//
// 通过 [Builder] 链式配置输出目标、级别、格式与源码定位,
// Build 产出 [Logger]。级别由 slog.LevelVar 驱动,运行期可调。
// 文件输出经 lumberjack 自动轮转。
//
// 典型用法:
//
//	log, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    Build()
//	log.Info(ctx, "parsed", slog.String("addr", "2001:db8::1"))
package xlog
