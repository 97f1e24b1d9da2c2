//go:build !(js && wasm)

package console

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-logr/logr"
)

// Native builds have no browser console. Messages go to a logr.Logger instead,
// which discards everything until SetLogger is called.

var (
	mu     sync.RWMutex
	logger = logr.Discard()
)

// SetLogger routes console output to l.
func SetLogger(l logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func current() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Log writes an informational message.
func Log(args ...any) {
	current().Info(join(args))
}

// Warn writes a warning. logr has no warning level, so it is tagged instead.
func Warn(args ...any) {
	current().Info(join(args), "level", "warn")
}

// Error writes an error message. A trailing error argument is passed to logr as the error.
func Error(args ...any) {
	var err error
	if len(args) > 0 {
		if e, ok := args[len(args)-1].(error); ok {
			err = e
			args = args[:len(args)-1]
		}
	}
	current().Error(err, join(args))
}

func join(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
