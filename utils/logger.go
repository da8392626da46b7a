package utils

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Logger provides leveled, timestamped logging throughout the application.
type Logger struct {
	out     *log.Logger
	verbose bool
}

// NewLogger creates a Logger writing to w. Debug lines are emitted only when verbose is set.
func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     log.New(w, "", 0),
		verbose: verbose,
	}
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) line(level, format string, args ...any) {
	l.out.Print(fmt.Sprintf("[%s] %s %s", l.timestamp(), level, fmt.Sprintf(format, args...)))
}

func (l *Logger) Info(format string, args ...any) {
	l.line("\033[32mINFO\033[0m ", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.line("\033[33mWARN\033[0m ", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.line("\033[31mERROR\033[0m", format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("\033[36mDEBUG\033[0m", format, args...)
}
