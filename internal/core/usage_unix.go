//go:build unix

package core

import (
	"golang.org/x/sys/unix"
)

// fileID identifies an inode across hard links.
type fileID struct {
	dev uint64
	ino uint64
}

// entryUsage returns the bytes allocated to path itself (st_blocks is in
// 512-byte units regardless of the file system block size). linked is set
// for non-directories with more than one link so callers can dedupe.
func entryUsage(path string) (size int64, id fileID, linked bool, err error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return 0, fileID{}, false, err
	}

	size = int64(st.Blocks) * 512
	isDir := st.Mode&unix.S_IFMT == unix.S_IFDIR
	if !isDir && st.Nlink > 1 {
		return size, fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true, nil
	}
	return size, fileID{}, false, nil
}
