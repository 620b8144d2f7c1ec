// Package logging builds the zap loggers used by the wizard and the server:
// a JSON file core, optionally teed with a colored console core.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Field is a type alias for zap.Field
type Field = zap.Field

// Field constructors, so callers only import this package.
var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Bool     = zap.Bool
	Any      = zap.Any
	Error    = zap.Error
	Duration = zap.Duration
	Time     = zap.Time
)

const (
	// DefaultFileName is the name of the JSON log file inside Config.Dir
	DefaultFileName = "pwa-builder.log"
	// DefaultDir is used when Config.Dir is empty
	DefaultDir = ".pwa/logs"
)

// LevelFromString parses a level name. Unknown names fall back to info.
func LevelFromString(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Config describes where log entries go.
type Config struct {
	Dir          string
	File         string
	FileLevel    zapcore.Level
	ConsoleLevel zapcore.Level
	// Console receives human readable entries; nil disables console output.
	Console io.Writer
	Caller  bool
}

// Logger is a zap.Logger that owns its log file.
type Logger struct {
	*zap.Logger
	file *os.File
}

// NewLogger opens (appending) the log file and builds the cores described
// by cfg.
func NewLogger(cfg Config) (*Logger, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	name := cfg.File
	if name == "" {
		name = DefaultFileName
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	core := jsonCore(file, cfg.FileLevel)
	if cfg.Console != nil {
		core = zapcore.NewTee(core, consoleCore(cfg.Console, cfg.ConsoleLevel))
	}

	opts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Caller {
		opts = append(opts, zap.AddCaller())
	}
	return &Logger{Logger: zap.New(core, opts...), file: file}, nil
}

func jsonCore(w io.Writer, level zapcore.Level) zapcore.Core {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), level)
}

func consoleCore(w io.Writer, level zapcore.Level) zapcore.Core {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// NewObservedLogger records entries in memory for assertions in tests.
func NewObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{Logger: zap.New(core)}, logs
}

// With returns a child logger carrying fields. Children share the parent's
// file and must not be closed.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

// Named returns a child logger with name appended to the logger name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name)}
}

// Close flushes buffered entries and releases the log file.
func (l *Logger) Close() error {
	_ = l.Logger.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
