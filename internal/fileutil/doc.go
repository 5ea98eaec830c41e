// Package fileutil provides the directory walker and text reading used by the
// index and search engines.
//
// # Purpose
//
// The fileutil package is designed for:
//   - Lazy directory traversal that hands each regular file to a callback
//   - Following symbolic links, with loop detection against ancestor directories
//   - Error-tolerant walking that skips unreadable entries instead of failing
//   - Optional extension filtering and directory exclusion
//   - Whole-file reads that insist on valid UTF-8 text
//
// # Main Components
//
// WalkOptions - Configuration struct for the walker:
//   - FollowSymlinks: Resolve symlinked files and directories
//   - Extensions: File extensions to include (case-insensitive, e.g., ".md", "txt")
//   - ExcludeDirs: Directory names never descended into (e.g., ".git")
//   - OnSkip: Optional hook told about every skipped entry and its error
//
// Walker.Walk() - Walks a root directory and calls visit for each regular file.
// Every call starts a fresh walk; nothing is cached between calls.
//
// ReadText() - Reads a file and validates it as UTF-8.
//
// # Usage Examples
//
// Visit every file below a directory:
//
//	w := fileutil.NewWalker(fileutil.WalkOptions{FollowSymlinks: true})
//	err := w.Walk(ctx, "/path/to/dir", func(e fileutil.Entry) error {
//	    fmt.Println(e.Path)
//	    return nil
//	})
//
// Stop early by returning an error from visit; Walk returns it unchanged:
//
//	err := w.Walk(ctx, root, func(e fileutil.Entry) error {
//	    if err := deadline.Check(); err != nil {
//	        return err
//	    }
//	    return process(e)
//	})
//
// # Ordering
//
// Entries of one directory are visited in lexical name order, and a
// subdirectory is walked completely before its next sibling. Walks of an
// unchanged tree therefore produce the same sequence every time.
//
// # Error Tolerance
//
// Entries that cannot be read (permission denied on a subdirectory, a broken
// symlink, a symlink loop) are skipped and reported to OnSkip when set. Only
// context cancellation and errors returned by visit stop a walk.
package fileutil
