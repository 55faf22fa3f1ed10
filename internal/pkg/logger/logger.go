package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the diagnostic logger.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Verbose forces debug level and mirrors records to Stderr.
	Verbose bool
	// FilePath enables the rotating log file when set.
	FilePath string
	Stderr   io.Writer
}

// SlogLogger implements ports.Logger on top of log/slog.
type SlogLogger struct {
	log     *slog.Logger
	level   *slog.LevelVar
	verbose bool
	closer  io.Closer
}

// New creates a logger writing to a rotating file (and stderr when verbose).
// Every record carries the session id of this process.
func New(opts Options) *SlogLogger {
	level := new(slog.LevelVar)
	level.Set(ParseLevel(opts.Level))
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	}

	var writers []io.Writer
	var closer io.Closer
	if opts.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
		}
		writers = append(writers, rotator)
		closer = rotator
	}
	if opts.Verbose {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writers = append(writers, stderr)
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return &SlogLogger{
		log:     slog.New(handler).With("session", uuid.NewString()),
		level:   level,
		verbose: opts.Verbose,
		closer:  closer,
	}
}

// ParseLevel maps a config log level onto slog. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLevel changes the level at runtime. Verbose loggers stay at debug.
func (l *SlogLogger) SetLevel(level string) {
	if l.verbose {
		return
	}
	l.level.Set(ParseLevel(level))
}

// Level reports the current level.
func (l *SlogLogger) Level() slog.Level {
	return l.level.Level()
}

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, attrs(fields)...)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, attrs(fields)...)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, attrs(fields)...)
}

func (l *SlogLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	l.log.Error(msg, args...)
}

// Close flushes and closes the log file, if any.
func (l *SlogLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// attrs converts fields into slog attributes in key order.
func attrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
