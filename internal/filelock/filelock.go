// Package filelock serializes run log bookkeeping across processes that share
// a log directory.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicSymlink points linkPath at target, replacing whatever linkPath was.
// The new link is created under a temporary name in the same directory and
// renamed over linkPath, so readers see either the old or the new link.
func AtomicSymlink(target, linkPath string) error {
	dir := filepath.Dir(linkPath)
	tempPath := filepath.Join(dir, fmt.Sprintf(".tmp-%s-%d", filepath.Base(linkPath), os.Getpid()))

	// Leftover from an interrupted run with the same pid
	os.Remove(tempPath)

	if err := os.Symlink(target, tempPath); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}

	if err := os.Rename(tempPath, linkPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename symlink to %s: %w", linkPath, err)
	}

	return nil
}

// LockAndLink acquires the directory lock, swaps the link, and releases the lock.
//
// The lock path is "<dir of linkPath>/.lock".
// Example: updating "logs/latest.log" uses lock file "logs/.lock"
func LockAndLink(target, linkPath string) error {
	lock := NewFileLock(filepath.Join(filepath.Dir(linkPath), ".lock"))

	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return AtomicSymlink(target, linkPath)
}
