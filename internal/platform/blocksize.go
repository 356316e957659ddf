// Package platform reports OS-specific file system properties used to size reads.
package platform

import "os"

const (
	// DefaultBlockSize is used when the file system does not report a preferred I/O size.
	DefaultBlockSize = 8 * 1024
	// ChunkMultiple is how many preferred blocks are read per chunk.
	ChunkMultiple = 4
	// MaxChunkSize bounds any configured chunk size.
	MaxChunkSize = 64 << 20
)

// ChunkSize returns the read size for f: ChunkMultiple times its preferred
// block size, capped at MaxChunkSize.
func ChunkSize(f *os.File) int {
	return min(ChunkMultiple*BlockSize(f), MaxChunkSize)
}
