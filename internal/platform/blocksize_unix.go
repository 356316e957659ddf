//go:build linux || darwin

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// BlockSize returns the file system's preferred I/O size (st_blksize) for f.
func BlockSize(f *os.File) int {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil { //nolint:gosec // G115: fd fits in int
		return DefaultBlockSize
	}
	if st.Blksize <= 0 {
		return DefaultBlockSize
	}
	return int(st.Blksize)
}
