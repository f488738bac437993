package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of log messages.
type LogLevel int

// Log levels, lowest first.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLogLevel converts a string log level to its LogLevel constant.
// Unknown values map to INFO.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Options configures the file sink and its rotation.
type Options struct {
	File       string
	Level      LogLevel
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Logger writes leveled messages to stdout and, when configured, a rotating file.
type Logger struct {
	out   *log.Logger
	level LogLevel
	mu    sync.RWMutex
}

var (
	instance *Logger
	once     sync.Once
)

// Init installs the global logger. Only the first call has an effect.
func Init(opts Options) {
	once.Do(func() {
		instance = New(opts)
	})
}

// New creates a logger. An empty File logs to stdout only.
func New(opts Options) *Logger {
	var w io.Writer = os.Stdout
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			log.Fatalf("cannot create log directory: %v", err)
		}
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
		})
	}
	return NewWithWriter(w, opts.Level)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags|log.Lshortfile),
		level: level,
	}
}

// SetLevel changes the minimum level that is written.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.GetLevel()
}

// Logf writes a formatted message. depth is the caller depth reported by Lshortfile.
func (l *Logger) Logf(depth int, level LogLevel, format string, v ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Output(depth+1, "["+level.String()+"] "+fmt.Sprintf(format, v...))
	if level == FATAL {
		os.Exit(1)
	}
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.Logf(2, DEBUG, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.Logf(2, INFO, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.Logf(2, WARN, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.Logf(2, ERROR, format, v...) }
func (l *Logger) Fatalf(format string, v ...interface{}) { l.Logf(2, FATAL, format, v...) }

// Global convenience functions. They are no-ops until Init is called.

// Default returns the global logger, or nil before Init.
func Default() *Logger {
	return instance
}

func Debugf(format string, v ...interface{}) {
	if instance != nil {
		instance.Logf(2, DEBUG, format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	if instance != nil {
		instance.Logf(2, INFO, format, v...)
	}
}

func Warnf(format string, v ...interface{}) {
	if instance != nil {
		instance.Logf(2, WARN, format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if instance != nil {
		instance.Logf(2, ERROR, format, v...)
	}
}

// Fatalf logs and exits. Before Init it falls back to the standard logger.
func Fatalf(format string, v ...interface{}) {
	if instance != nil {
		instance.Logf(2, FATAL, format, v...)
		return
	}
	log.Fatalf(format, v...)
}

// SetLevel changes the level of the global logger.
func SetLevel(level LogLevel) {
	if instance != nil {
		instance.SetLevel(level)
	}
}
