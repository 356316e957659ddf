//go:build !linux && !darwin

package platform

import "os"

// BlockSize returns DefaultBlockSize; st_blksize is not available here.
func BlockSize(_ *os.File) int {
	return DefaultBlockSize
}
