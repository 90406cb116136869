package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestFileLoggerCreatesRunLog verifies the log directory, run file and latest.log symlink.
func TestFileLoggerCreatesRunLog(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewFileLogger(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logger.RunFile()); err != nil {
		t.Fatalf("run log not created: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(logger.RunFile()), "run-") {
		t.Errorf("unexpected run file name %q", logger.RunFile())
	}

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("latest.log symlink missing: %v", err)
	}
	if target != filepath.Base(logger.RunFile()) {
		t.Errorf("latest.log -> %q, want %q", target, filepath.Base(logger.RunFile()))
	}
}

// TestFileLoggerWritesAndFilters verifies level filtering in the run log.
func TestFileLoggerWritesAndFilters(t *testing.T) {
	logDir := t.TempDir()

	logger, err := NewFileLogger(logDir, "warn")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.LogDebug("hidden debug")
	logger.LogInfo("hidden info")
	logger.LogWarn("visible warning")
	logger.LogError("visible error")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logger.RunFile())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "=== Tally Run Log ===") {
		t.Error("run log header missing")
	}
	if strings.Contains(content, "hidden") {
		t.Errorf("filtered messages were written:\n%s", content)
	}
	if !strings.Contains(content, "[WARN] visible warning") || !strings.Contains(content, "[ERROR] visible error") {
		t.Errorf("expected messages missing:\n%s", content)
	}
}

// TestFileLoggerCloseIdempotent verifies writes after Close are dropped and Close can repeat.
func TestFileLoggerCloseIdempotent(t *testing.T) {
	logger, err := NewFileLogger(t.TempDir(), "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	logger.LogError("after close")
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
