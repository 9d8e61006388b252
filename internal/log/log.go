// Package log 封装 log/slog，提供按 verbosity 控制的结构化日志。
// 日志固定写 stderr，stdout 只留给命令输出。
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// verbosity 对应的日志级别：0 只输出错误，3 及以上输出 debug。
const (
	VerbosityError = 0
	VerbosityWarn  = 1
	VerbosityInfo  = 2
	VerbosityDebug = 3
)

// HandlerOptions 配置日志 handler。
type HandlerOptions struct {
	Level  slog.Leveler
	Format string // "text" 或 "json"
	Output io.Writer
}

var (
	logger atomic.Pointer[slog.Logger]
	level  = new(slog.LevelVar)
)

func init() {
	level.Set(slog.LevelWarn)
	logger.Store(slog.New(NewHandler(HandlerOptions{Level: level, Format: "text"})))
}

// NewHandler 根据格式创建 text 或 json handler。
func NewHandler(opts HandlerOptions) slog.Handler {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Format == "json" {
		return slog.NewJSONHandler(opts.Output, handlerOpts)
	}
	return slog.NewTextHandler(opts.Output, handlerOpts)
}

// VerbosityToLevel 把 -v=N 映射为 slog 级别。
func VerbosityToLevel(v int) slog.Level {
	switch {
	case v <= VerbosityError:
		return slog.LevelError
	case v == VerbosityWarn:
		return slog.LevelWarn
	case v == VerbosityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Init 重新初始化全局 logger，output 为 nil 时写 stderr。
func Init(v int, format string, output io.Writer) {
	level.Set(VerbosityToLevel(v))
	logger.Store(slog.New(NewHandler(HandlerOptions{
		Level:  level,
		Format: format,
		Output: output,
	})))
}

// Logger 返回当前 logger。
func Logger() *slog.Logger {
	return logger.Load()
}

// Component 返回带 component 字段的 logger。
func Component(name string) *slog.Logger {
	return logger.Load().With("component", name)
}

// Discard 返回丢弃全部记录的 logger，测试中常用。
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
