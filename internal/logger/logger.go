// Package logger provides leveled logging for the wordsearch server and CLI.
// Messages go to stderr through the standard log package, since stdout
// carries the MCP protocol.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// EnvLevel names the environment variable that overrides the configured level.
const EnvLevel = "WORDSEARCH_LOG_LEVEL"

// Flags are the standard log flags used for every message.
const Flags = log.Ldate | log.Ltime | log.Lshortfile

// Level is a logging threshold. Messages below the current level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
// "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

var (
	mu    sync.RWMutex
	level = LevelWarn
	std   = log.New(os.Stderr, "", Flags)
)

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// GetLevel returns the current minimum level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetOutput sets the output writer. Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

// Configure sets the level from a name, letting EnvLevel override it when
// set. An unknown name leaves the level unchanged and returns an error.
func Configure(name string) error {
	if env := os.Getenv(EnvLevel); env != "" {
		name = env
	}
	l, err := ParseLevel(name)
	if err != nil {
		return err
	}
	SetLevel(l)
	return nil
}

// Enabled reports whether messages at l are currently written.
func Enabled(l Level) bool {
	return l >= GetLevel()
}

// Debug logs a debug message.
func Debug(format string, args ...any) { output(LevelDebug, format, args...) }

// Info logs an informational message.
func Info(format string, args ...any) { output(LevelInfo, format, args...) }

// Warn logs a warning.
func Warn(format string, args ...any) { output(LevelWarn, format, args...) }

// Error logs an error.
func Error(format string, args ...any) { output(LevelError, format, args...) }

func output(l Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l < level {
		return
	}
	// Depth 3 attributes the line to the caller of Debug/Info/Warn/Error.
	_ = std.Output(3, "["+strings.ToUpper(l.String())+"] "+fmt.Sprintf(format, args...))
}
