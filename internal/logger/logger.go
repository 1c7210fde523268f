package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/edusync/internal/constants"
)

var (
	// Logger is the global logger instance. It stays nil until Init runs,
	// and every helper below is a no-op until then.
	Logger *log.Logger

	discard = log.New(io.Discard)
)

// Rotation defaults for the log file
const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Config holds logger configuration
type Config struct {
	Debug     bool
	ConfigDir string
	// Stderr mirrors records to stderr in debug mode. The TUI turns this off
	// so log lines don't tear through the alternate screen.
	Stderr bool

	// Zero values fall back to 10 MB, 3 backups and 28 days
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Path returns the log file written for cfg
func (cfg Config) Path() string {
	return filepath.Join(cfg.ConfigDir, "logs", constants.AppName+".log")
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Path()), 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.Path(),
		MaxSize:    orDefault(cfg.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(cfg.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(cfg.MaxAgeDays, defaultMaxAgeDays),
		Compress:   true,
	}

	// Quiet by default: only warnings and errors reach the file
	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	var writer io.Writer = fileWriter
	if cfg.Debug && cfg.Stderr {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	return nil
}

// With returns a child logger that adds keyvals to every record. Before
// Init it returns a logger that discards everything.
func With(keyvals ...interface{}) *log.Logger {
	if Logger == nil {
		return discard
	}
	return Logger.With(keyvals...)
}

// Request returns a child logger for one API round trip
func Request(requestID, method, path string) *log.Logger {
	return With("request_id", requestID, "method", method, "path", path)
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
