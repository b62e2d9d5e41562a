package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// slogLogger adapts a *slog.Logger to Logger. Arguments are joined with fmt.Sprint.
type slogLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger returns a Logger writing text records to stdout.
func NewConsoleLogger(level string) Logger {
	return newTextLogger(os.Stdout, level)
}

// NewFileLogger returns a Logger writing JSON records to filePath, rotated by lumberjack.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	return &slogLogger{logger: slog.New(slog.NewJSONHandler(writer, handlerOptions(level)))}
}

func newTextLogger(w io.Writer, level string) *slogLogger {
	return &slogLogger{logger: slog.New(slog.NewTextHandler(w, handlerOptions(level)))}
}

func handlerOptions(level string) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.LevelKey {
				if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl == LevelCritical {
					attr.Value = slog.StringValue("CRITICAL")
				}
			}
			return attr
		},
	}
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at critical level and exits the process.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Log(context.Background(), LevelCritical, formatArgs(args...))
	os.Exit(1)
}

// Panic logs at critical level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Log(context.Background(), LevelCritical, msg)
	panic(msg)
}
