package core

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
)

var (
	errAlreadyRemoved = stderrors.New("directory no longer exists")
	errNowSymlink     = stderrors.New("path is now a symlink")
	errNotDir         = stderrors.New("path is no longer a directory")
)

// NeverDeletePaths returns paths that must never be removed no matter what a
// scan returned: the file system root of path's volume and the user's home.
func NeverDeletePaths(path string) []string {
	protected := []string{
		filepath.VolumeName(path) + string(filepath.Separator),
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		protected = append(protected, filepath.Clean(home))
	}
	return protected
}

// IsProtected reports whether path is one of the protected paths.
func IsProtected(path string, protected []string) bool {
	cleaned := filepath.Clean(path)
	for _, p := range protected {
		if cleaned == filepath.Clean(p) {
			return true
		}
	}
	return false
}

// SafeDelete recursively removes the directory at path. It refuses protected
// paths, paths that have become symlinks or regular files since the scan, and
// paths that are already gone. With dryRun the checks run but nothing is
// removed.
func SafeDelete(fsys FileSystem, path string, dryRun bool) error {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.NewDeletionFailed(path, err)
		}
		path = abs
	}

	if IsProtected(path, NeverDeletePaths(path)) {
		return errors.NewProtectedPath(path)
	}

	info, err := fsys.Lstat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.NewDeletionFailed(path, errAlreadyRemoved)
		}
		return errors.NewDeletionFailed(path, err)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return errors.NewDeletionFailed(path, errNowSymlink)
	}
	if !info.IsDir() {
		return errors.NewDeletionFailed(path, errNotDir)
	}

	if dryRun {
		return nil
	}

	if err := fsys.RemoveTree(path); err != nil {
		return errors.NewDeletionFailed(path, err)
	}
	return nil
}
