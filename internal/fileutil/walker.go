package fileutil

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrSymlinkLoop is reported to OnSkip for a symlinked directory that
// resolves to one of its own ancestors.
var ErrSymlinkLoop = errors.New("symlink loop detected")

// WalkOptions configures the directory walk
type WalkOptions struct {
	// FollowSymlinks resolves symlinks to files and directories
	FollowSymlinks bool
	// Extensions is a list of file extensions to include (empty = all files)
	Extensions []string
	// ExcludeDirs is a list of directory names to skip (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// OnSkip, if set, is called for every entry skipped because of an error
	OnSkip func(path string, err error)
}

// Entry is a regular file found by the walker
type Entry struct {
	// Path is the root joined with the names leading to the file
	Path string
	// Info describes the file (the link target when reached through a symlink)
	Info fs.FileInfo
}

// Walker enumerates regular files under a root directory.
type Walker struct {
	opts       WalkOptions
	extMap     map[string]bool
	excludeMap map[string]bool
}

// NewWalker creates a Walker for the given options.
func NewWalker(opts WalkOptions) *Walker {
	// Create extension map for fast lookup
	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		// Ensure extensions start with a dot
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	excludeMap := make(map[string]bool)
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	return &Walker{
		opts:       opts,
		extMap:     extMap,
		excludeMap: excludeMap,
	}
}

// Walk calls visit for each regular file below root. A non-nil error from
// visit stops the walk and is returned as is. Cancelling ctx stops the walk
// with ctx.Err(). Entries that cannot be read are skipped.
func (w *Walker) Walk(ctx context.Context, root string, visit func(Entry) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "walk", Path: root, Err: errors.New("not a directory")}
	}

	return w.walkDir(ctx, root, []fs.FileInfo{info}, visit)
}

// walkDir walks one directory. ancestors holds the directories from the root
// down to and including dir, used for loop detection.
func (w *Walker) walkDir(ctx context.Context, dir string, ancestors []fs.FileInfo, visit func(Entry) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// ReadDir may still return the entries read before the failure
		w.skip(dir, err)
	}

	for _, d := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, d.Name())
		info, err := w.entryInfo(path, d)
		if err != nil {
			w.skip(path, err)
			continue
		}

		switch {
		case info.IsDir():
			if w.excludeMap[d.Name()] {
				continue
			}
			if isAncestor(ancestors, info) {
				w.skip(path, ErrSymlinkLoop)
				continue
			}
			if err := w.walkDir(ctx, path, append(ancestors, info), visit); err != nil {
				return err
			}

		case info.Mode().IsRegular():
			if !w.matchesExtension(d.Name()) {
				continue
			}
			if err := visit(Entry{Path: path, Info: info}); err != nil {
				return err
			}
		}
	}

	return nil
}

// entryInfo resolves symlinks when following is enabled. Without following,
// a symlink keeps its own mode and is neither a directory nor a regular file.
func (w *Walker) entryInfo(path string, d fs.DirEntry) (fs.FileInfo, error) {
	if d.Type()&fs.ModeSymlink != 0 && w.opts.FollowSymlinks {
		return os.Stat(path)
	}
	return d.Info()
}

func (w *Walker) matchesExtension(name string) bool {
	if len(w.extMap) == 0 {
		return true
	}
	return w.extMap[strings.ToLower(filepath.Ext(name))]
}

func (w *Walker) skip(path string, err error) {
	if w.opts.OnSkip != nil {
		w.opts.OnSkip(path, err)
	}
}

func isAncestor(ancestors []fs.FileInfo, info fs.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(a, info) {
			return true
		}
	}
	return false
}
