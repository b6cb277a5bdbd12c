// Package logger 基于zerolog的结构化日志
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/infrastructure/config"
)

// New 按配置创建Logger，并设置为全局Logger（github.com/rs/zerolog/log）
// 返回的关闭函数用于关闭日志文件（输出到stdout/stderr时为空操作）
func New(cfg config.LogConfig) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out, closeFn, err := openOutput(cfg.Output)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()

	log.Logger = l
	zerolog.SetGlobalLevel(level)
	// context中没有Logger时（非HTTP调用链）log.Ctx回退到全局Logger
	zerolog.DefaultContextLogger = &log.Logger

	return l, closeFn, nil
}

func openOutput(output string) (io.Writer, func(), error) {
	switch output {
	case "", "stdout":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
}
