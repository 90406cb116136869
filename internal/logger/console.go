package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// levelColors maps each level tag to the attribute it is printed with on a
// terminal.
var levelColors = map[string]color.Attribute{
	"TRACE": color.FgHiBlack,
	"DEBUG": color.FgCyan,
	"INFO":  color.FgBlue,
	"WARN":  color.FgYellow,
	"ERROR": color.FgRed,
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Level tags are colored when the writer is a terminal and NO_COLOR is unset.
type ConsoleLogger struct {
	writer   io.Writer
	logLevel string
	mutex    sync.Mutex
	tags     map[string]string
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return newConsoleLogger(writer, logLevel, colorWriter(writer))
}

func newConsoleLogger(writer io.Writer, logLevel string, colorOn bool) *ConsoleLogger {
	tags := make(map[string]string, len(levelColors))
	for level, attr := range levelColors {
		c := color.New(attr)
		if colorOn {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		tags[level] = c.Sprint(level)
	}

	return &ConsoleLogger{
		writer:   writer,
		logLevel: normalizeLogLevel(logLevel),
		tags:     tags,
	}
}

// colorWriter reports whether w is a terminal that should get colored tags.
func colorWriter(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil || !enabled(cl.logLevel, strings.ToLower(level)) {
		return
	}

	line := fmt.Sprintf("[%s] [%s] %s\n", timestamp(), cl.tags[level], message)

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	io.WriteString(cl.writer, line)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}
