package debug

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	enabled bool
	logger  *zap.SugaredLogger
	logFile *os.File
	mu      sync.Mutex
)

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	logger = zap.New(core).Sugar()
	logFile = f
	enabled = true

	logger.Debug("Debug logging enabled")
	return nil
}

// Close flushes and closes the debug log.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logger == nil {
		return
	}
	logger.Debugf(format, args...)
}

// With writes a structured debug message if debugging is enabled.
func With(msg string, keysAndValues ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logger == nil {
		return
	}
	logger.Debugw(msg, keysAndValues...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log("%s started", name)

	return func() {
		Log("%s completed in %v", name, time.Since(start))
	}
}
