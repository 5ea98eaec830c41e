package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of a mindexr failure.
type ErrorKind int

const (
	// KindIo is a generic filesystem failure.
	KindIo ErrorKind = iota + 1
	// KindPathNotFound means the path does not exist.
	KindPathNotFound
	// KindNotAFile means a file was required but the path is something else.
	KindNotAFile
	// KindNotADirectory means a directory was required but the path is something else.
	KindNotADirectory
	// KindPermissionDenied means the permission policy rejected the path.
	KindPermissionDenied
	// KindInvalidUTF8 means the file content is not valid UTF-8 text.
	KindInvalidUTF8
	// KindFileTooLarge means the file exceeds the configured size ceiling.
	KindFileTooLarge
	// KindEmptyQuery means the query is empty after trimming.
	KindEmptyQuery
	// KindInvalidPattern means a /.../ query does not compile as a regular expression.
	KindInvalidPattern
	// KindSearchTimeout means the search budget was exhausted.
	KindSearchTimeout
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindIo:
		return "Io"
	case KindPathNotFound:
		return "PathNotFound"
	case KindNotAFile:
		return "NotAFile"
	case KindNotADirectory:
		return "NotADirectory"
	case KindPermissionDenied:
		return "PermissionDenied"
	case KindInvalidUTF8:
		return "InvalidUtf8"
	case KindFileTooLarge:
		return "FileTooLarge"
	case KindEmptyQuery:
		return "EmptyQuery"
	case KindInvalidPattern:
		return "InvalidPattern"
	case KindSearchTimeout:
		return "SearchTimeout"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the validation, query, walk,
// index and search layers. Kind selects which payload fields are meaningful:
//
//	PathNotFound, NotAFile, NotADirectory,
//	PermissionDenied, InvalidUtf8            Path
//	FileTooLarge                             Path, Size, MaxSize
//	InvalidPattern                           Pattern
//	SearchTimeout                            Budget
//	Io                                       Path (optional), Err
type Error struct {
	Kind    ErrorKind
	Path    string
	Size    int64
	MaxSize int64
	Pattern string
	Budget  time.Duration
	Err     error
}

// Sentinel values for errors.Is. Comparison is by Kind only.
var (
	ErrIo               = &Error{Kind: KindIo}
	ErrPathNotFound     = &Error{Kind: KindPathNotFound}
	ErrNotAFile         = &Error{Kind: KindNotAFile}
	ErrNotADirectory    = &Error{Kind: KindNotADirectory}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrInvalidUTF8      = &Error{Kind: KindInvalidUTF8}
	ErrFileTooLarge     = &Error{Kind: KindFileTooLarge}
	ErrEmptyQuery       = &Error{Kind: KindEmptyQuery}
	ErrInvalidPattern   = &Error{Kind: KindInvalidPattern}
	ErrSearchTimeout    = &Error{Kind: KindSearchTimeout}
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindIo:
		if e.Path != "" {
			return fmt.Sprintf("IO error: %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("IO error: %v", e.Err)
	case KindPathNotFound:
		return fmt.Sprintf("path does not exist: %s", e.Path)
	case KindNotAFile:
		return fmt.Sprintf("not a file: %s", e.Path)
	case KindNotADirectory:
		return fmt.Sprintf("not a directory: %s", e.Path)
	case KindPermissionDenied:
		return fmt.Sprintf("permission denied: %s", e.Path)
	case KindInvalidUTF8:
		return fmt.Sprintf("invalid UTF-8 in file: %s", e.Path)
	case KindFileTooLarge:
		return fmt.Sprintf("file too large: %s (%d bytes, max %d bytes)", e.Path, e.Size, e.MaxSize)
	case KindEmptyQuery:
		return "empty query string"
	case KindInvalidPattern:
		return fmt.Sprintf("invalid query pattern: %s", e.Pattern)
	case KindSearchTimeout:
		return fmt.Sprintf("search timeout after %d seconds", e.BudgetSeconds())
	default:
		return "unknown error"
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// BudgetSeconds returns the search budget in whole seconds.
func (e *Error) BudgetSeconds() int64 {
	return int64(e.Budget / time.Second)
}

// KindOf extracts the ErrorKind from anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// NewIoError wraps a filesystem failure for path.
func NewIoError(path string, err error) *Error {
	return &Error{Kind: KindIo, Path: path, Err: err}
}

// NewPathNotFound creates a PathNotFound error.
func NewPathNotFound(path string) *Error {
	return &Error{Kind: KindPathNotFound, Path: path}
}

// NewNotAFile creates a NotAFile error.
func NewNotAFile(path string) *Error {
	return &Error{Kind: KindNotAFile, Path: path}
}

// NewNotADirectory creates a NotADirectory error.
func NewNotADirectory(path string) *Error {
	return &Error{Kind: KindNotADirectory, Path: path}
}

// NewPermissionDenied creates a PermissionDenied error. cause may be nil when
// the denial comes from policy rather than the operating system.
func NewPermissionDenied(path string, cause error) *Error {
	return &Error{Kind: KindPermissionDenied, Path: path, Err: cause}
}

// NewInvalidUTF8 creates an InvalidUtf8 error.
func NewInvalidUTF8(path string) *Error {
	return &Error{Kind: KindInvalidUTF8, Path: path}
}

// NewFileTooLarge creates a FileTooLarge error carrying the actual size and the ceiling.
func NewFileTooLarge(path string, size, maxSize int64) *Error {
	return &Error{Kind: KindFileTooLarge, Path: path, Size: size, MaxSize: maxSize}
}

// NewEmptyQuery creates an EmptyQuery error.
func NewEmptyQuery() *Error {
	return &Error{Kind: KindEmptyQuery}
}

// NewInvalidPattern creates an InvalidPattern error for the inner pattern text.
func NewInvalidPattern(pattern string, cause error) *Error {
	return &Error{Kind: KindInvalidPattern, Pattern: pattern, Err: cause}
}

// NewSearchTimeout creates a SearchTimeout error for the given budget.
func NewSearchTimeout(budget time.Duration) *Error {
	return &Error{Kind: KindSearchTimeout, Budget: budget}
}
