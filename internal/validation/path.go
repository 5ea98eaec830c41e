// Package validation classifies and authorizes candidate paths before any
// content is read. A path that passes validation is a ValidatedPath: it exists,
// has the requested kind, and for files satisfies the size ceiling and the
// permission policy.
package validation

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/harrison/mindexr/internal/models"
)

// PathKind is the kind of filesystem entry a ValidatedPath refers to.
type PathKind int

const (
	// KindFile is a regular file.
	KindFile PathKind = iota
	// KindDirectory is a directory.
	KindDirectory
)

// ValidatedPath is a path that passed validation. It is not re-checked
// once reading begins.
type ValidatedPath struct {
	Path string
	Kind PathKind
	Size int64 // Size at validation time (files only)
}

// Validator applies the size ceiling and permission policy.
type Validator struct {
	maxFileSize  int64
	denyReadOnly bool
}

// NewValidator creates a Validator. Files larger than maxFileSize bytes fail
// with FileTooLarge. When denyReadOnly is set, files without any write
// permission bit fail with PermissionDenied even though only read access is used.
func NewValidator(maxFileSize int64, denyReadOnly bool) *Validator {
	return &Validator{
		maxFileSize:  maxFileSize,
		denyReadOnly: denyReadOnly,
	}
}

// ValidateFile checks that path is an existing, readable regular file within
// the size ceiling. Checks run in order: existence, kind, size, open, policy.
// An oversized file is rejected before it is opened.
func (v *Validator) ValidateFile(path string) (*ValidatedPath, error) {
	info, err := stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, models.NewNotAFile(path)
	}

	if info.Size() > v.maxFileSize {
		return nil, models.NewFileTooLarge(path, info.Size(), v.maxFileSize)
	}

	if err := probeOpen(path); err != nil {
		return nil, err
	}

	if v.denyReadOnly && isReadOnly(info) {
		return nil, models.NewPermissionDenied(path, nil)
	}

	return &ValidatedPath{Path: path, Kind: KindFile, Size: info.Size()}, nil
}

// ValidateDirectory checks that path is an existing directory whose entries
// can be listed.
func (v *Validator) ValidateDirectory(path string) (*ValidatedPath, error) {
	info, err := stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, models.NewNotADirectory(path)
	}

	dir, err := os.Open(path)
	if err != nil {
		return nil, models.NewIoError(path, err)
	}
	defer dir.Close()

	// One name is enough to prove the directory is listable
	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return nil, models.NewIoError(path, err)
	}

	return &ValidatedPath{Path: path, Kind: KindDirectory}, nil
}

// stat follows symlinks. Every error meaning the path cannot name an
// existing entry reports PathNotFound: a dangling link, a file used as a
// directory component, an overlong name, or a symlink cycle.
func stat(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info, nil
	}
	if isNotExist(err) {
		return nil, models.NewPathNotFound(path)
	}
	return nil, models.NewIoError(path, err)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.ELOOP)
}

// probeOpen opens the file for reading and releases it immediately.
func probeOpen(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return models.NewPermissionDenied(path, err)
		}
		return models.NewIoError(path, err)
	}
	if err := f.Close(); err != nil {
		return models.NewIoError(path, err)
	}
	return nil
}

func isReadOnly(info fs.FileInfo) bool {
	return info.Mode().Perm()&0o222 == 0
}
