// Package filelock serializes report writes across processes and replaces
// report files atomically, so a reader never observes a half-written report.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockSuffix is appended to a target path to name its lock file.
const LockSuffix = ".lock"

// FileLock is an advisory, exclusive lock backed by a lock file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// New returns a lock on path. The lock file is created on first use.
func New(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// Lock blocks until the lock is held.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryLock acquires the lock without blocking and reports whether it succeeded.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// WaitFunc is called with the lock file path when the lock is held elsewhere
// and the caller is about to block on it.
type WaitFunc func(lockPath string)

// WithLock runs fn while holding the lock for target (target + LockSuffix).
// onWait may be nil.
func WithLock(target string, onWait WaitFunc, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	lock := New(target + LockSuffix)
	acquired, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		if onWait != nil {
			onWait(lock.Path())
		}
		if err := lock.Lock(); err != nil {
			return err
		}
	}
	defer lock.Unlock()

	return fn()
}

// AtomicWrite replaces path with data by writing a temp file in the same
// directory and renaming it over the target. On failure the previous content
// is left untouched.
func AtomicWrite(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	return nil
}

// LockAndWrite holds the target's lock while atomically writing data.
func LockAndWrite(path string, data []byte, onWait WaitFunc) error {
	return WithLock(path, onWait, func() error {
		return AtomicWrite(path, data)
	})
}
