package xlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// nowFunc 可在测试中替换以固定时间戳
var nowFunc = time.Now

// Logger 是 xipctl 使用的日志接口。
// 所有方法并发安全;Attr 形式避免 any 可变参数的装箱歧义。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回携带固定属性的派生 Logger,与父共享级别。
	With(attrs ...slog.Attr) Logger

	// SetLevel 运行期调整级别,对所有派生 Logger 生效。
	SetLevel(level Level)

	// Slog 返回底层 *slog.Logger,用于需要标准接口的第三方库。
	Slog() *slog.Logger
}

// 编译时接口检查
var _ Logger = (*xlogger)(nil)

// Builder 链式配置日志器。配置错误在 Build 时统一返回。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	err       error
}

// New 创建构建器,默认 stderr、INFO 级别、text 格式。
func New() *Builder {
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelInfo)
	return &Builder{output: os.Stderr, levelVar: lv, format: "text"}
}

// SetOutput 设置输出目标。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// SetFile 设置轮转文件输出,覆盖 SetOutput。
// maxSizeMB 为单文件上限,maxBackups 为保留的旧文件数。
func (b *Builder) SetFile(path string, maxSizeMB, maxBackups int) *Builder {
	if path == "" {
		b.err = fmt.Errorf("xlog: empty log file path")
		return b
	}
	b.output = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}
	return b
}

// SetLevel 设置初始级别。
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置级别,解析失败记入构建错误。
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式,"text" 或 "json"。
func (b *Builder) SetFormat(format string) *Builder {
	switch format {
	case "text", "json":
		b.format = format
	default:
		b.err = fmt.Errorf("xlog: unknown format %q", format)
	}
	return b
}

// SetAddSource 设置是否记录调用位置。
// runtime 取帧有开销,默认关闭。
func (b *Builder) SetAddSource(on bool) *Builder {
	b.addSource = on
	return b
}

// Build 构建 Logger。
func (b *Builder) Build() (Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	opts := &slog.HandlerOptions{Level: b.levelVar, AddSource: b.addSource}
	var h slog.Handler
	if b.format == "json" {
		h = slog.NewJSONHandler(b.output, opts)
	} else {
		h = slog.NewTextHandler(b.output, opts)
	}
	return &xlogger{handler: h, levelVar: b.levelVar}, nil
}

// MustBuild 与 Build 相同,失败时 panic,用于程序入口。
func (b *Builder) MustBuild() Logger {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}

type xlogger struct {
	handler  slog.Handler
	levelVar *slog.LevelVar
}

func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}
	r := slog.NewRecord(nowFunc(), level, msg, 0)
	r.AddAttrs(attrs...)
	_ = l.handler.Handle(ctx, r)
}

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{handler: l.handler.WithAttrs(attrs), levelVar: l.levelVar}
}

func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

func (l *xlogger) Slog() *slog.Logger {
	return slog.New(l.handler)
}

// Discard 返回丢弃所有输出的 Logger,用于测试与禁用日志场景。
func Discard() Logger {
	return &xlogger{handler: slog.DiscardHandler, levelVar: new(slog.LevelVar)}
}
