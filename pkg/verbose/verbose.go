// Package verbose provides debug logging for the --verbose flag.
//
// Messages go through a zap logger with a console encoder configured to
// print "[DEBUG] message {fields}" lines, so ad-hoc Printf output and
// structured events share one format.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
	logger            = newLogger(os.Stderr)
)

// newLogger builds a zap logger writing bracketed-level console lines to w.
//
// Parameters:
//   - w: Destination for log lines
//
// Returns:
//   - *zap.Logger: Logger at debug level without timestamps or caller info
func newLogger(w io.Writer) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		ConsoleSeparator: " ",
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]")
		},
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Rebuilds the zap logger around the provided writer if it is not nil
//   - Releases the write lock
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
		logger = newLogger(w)
	}
}

// Writer returns the current output writer.
//
// Returns:
//   - io.Writer: The configured destination, os.Stderr by default
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// activeLogger returns the logger when verbose output is enabled, nil otherwise.
func activeLogger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return nil
	}
	return logger
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if l := activeLogger(); l != nil {
		l.Debug(fmt.Sprintf(format, args...))
	}
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if l := activeLogger(); l != nil {
		l.Debug(msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// Event logs a message with structured fields if enabled.
//
// Fields are rendered after the message as a JSON object:
//
//	[DEBUG] Catalog loaded {"source": "cosmetics.csv", "products": 1472}
//
// Parameters:
//   - msg: The event message
//   - fields: zap fields attached to the event
func Event(msg string, fields ...zap.Field) {
	if l := activeLogger(); l != nil {
		l.Debug(msg, fields...)
	}
}

// ConfigLoaded logs which config file was loaded if enabled.
//
// Parameters:
//   - path: The config file path, or empty when built-in defaults are used
func ConfigLoaded(path string) {
	if path == "" {
		Info("Using built-in default configuration")
		return
	}
	Event("Config loaded", zap.String("path", path))
}

// CatalogLoaded logs a catalog load or cache hit if enabled.
//
// Parameters:
//   - source: Catalog source path
//   - products: Number of products in the catalog
//   - cached: true when the catalog came from the loader cache
func CatalogLoaded(source string, products int, cached bool) {
	msg := "Catalog loaded"
	if cached {
		msg = "Catalog served from cache"
	}
	Event(msg, zap.String("source", source), zap.Int("products", products))
}

// FilterApplied logs how many products survived a filter stage if enabled.
//
// Parameters:
//   - stage: Name of the filter stage (e.g. "skin:Oily", "ingredients", "range")
//   - before: Number of candidate products entering the stage
//   - after: Number of products passing the stage
func FilterApplied(stage string, before, after int) {
	Event("Filter applied", zap.String("stage", stage), zap.Int("in", before), zap.Int("out", after))
}

// ProductSkipped logs a product excluded for a data problem if enabled.
//
// Parameters:
//   - name: Product display name
//   - reason: Why it was skipped
func ProductSkipped(name, reason string) {
	Event("Product skipped", zap.String("product", name), zap.String("reason", reason))
}
