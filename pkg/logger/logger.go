// Package logger is a minimal leveled logger for the API process.
// Zero external deps; level is set once at startup via Init.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu  sync.RWMutex
	out = log.New(os.Stdout, "", 0)
	min = LevelInfo
)

// Init sets the global log level (case-insensitive: debug, info, warn,
// error). Unknown values fall back to info.
func Init(level string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		min = LevelDebug
	case "warn", "warning":
		min = LevelWarn
	case "error":
		min = LevelError
	default:
		min = LevelInfo
	}
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= min
}

func emit(tag, format string, v ...interface{}) {
	prefix := fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), tag)
	out.Printf(prefix+format, v...)
}

func Debugf(format string, v ...interface{}) {
	if enabled(LevelDebug) {
		emit("DEBUG", format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	if enabled(LevelInfo) {
		emit("INFO", format, v...)
	}
}

func Warnf(format string, v ...interface{}) {
	if enabled(LevelWarn) {
		emit("WARN", format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if enabled(LevelError) {
		emit("ERROR", format, v...)
	}
}

func Fatalf(format string, v ...interface{}) {
	emit("FATAL", format, v...)
	os.Exit(1)
}
