package engine

import (
	"errors"
	"io"
	"os"

	"golang.org/x/time/rate"

	"github.com/bamsammich/checksum/internal/event"
	"github.com/bamsammich/checksum/internal/platform"
)

// Progress consumes byte-length increments, one call per chunk hashed.
type Progress interface {
	Add(n int)
}

type discardProgress struct{}

func (discardProgress) Add(int) {}

// HashOptions controls the streaming hasher. A ChunkSize of zero or less
// sizes reads from each file's preferred block size, and sizes above
// platform.MaxChunkSize are clamped to it. A nil Limiter reads unthrottled.
type HashOptions struct {
	ChunkSize int
	Limiter   *rate.Limiter
	Events    event.Sink
}

// Hash feeds every byte of every regular file under root into acc, exactly
// once, in Walk order. progress receives each chunk's length after the chunk
// has been written to acc. Directory metadata never reaches acc. The first
// error aborts the whole computation.
func Hash(root string, acc io.Writer, progress Progress, opts HashOptions) error {
	if progress == nil {
		progress = discardProgress{}
	}
	var buf []byte
	if opts.ChunkSize > 0 {
		buf = make([]byte, min(opts.ChunkSize, platform.MaxChunkSize))
	}

	return Walk(root, func(n Node) error {
		if n.Kind != File {
			return nil
		}
		written, err := hashFile(n.Path, acc, progress, &buf, opts.ChunkSize <= 0, opts.Limiter)
		if err != nil {
			return err
		}
		event.Emit(opts.Events, event.Event{Type: event.FileHashed, Path: n.Path, Size: written})
		return nil
	})
}

// HashFile streams a single regular file into acc in chunks of chunkSize
// bytes (zero selects platform.ChunkSize, at most platform.MaxChunkSize) and
// returns the bytes consumed.
func HashFile(path string, acc io.Writer, progress Progress, chunkSize int) (int64, error) {
	if progress == nil {
		progress = discardProgress{}
	}
	var buf []byte
	if chunkSize > 0 {
		buf = make([]byte, min(chunkSize, platform.MaxChunkSize))
	}
	return hashFile(path, acc, progress, &buf, chunkSize <= 0, nil)
}

// hashFile reuses *buf across files. When auto is set the buffer is sized
// from the file's preferred block size, growing but never shrinking.
func hashFile(
	path string,
	acc io.Writer,
	progress Progress,
	buf *[]byte,
	auto bool,
	limiter *rate.Limiter,
) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, classify("open", path, err)
	}
	defer f.Close()

	if auto {
		if size := platform.ChunkSize(f); len(*buf) < size {
			*buf = make([]byte, size)
		}
	}
	chunk := *buf

	var r io.Reader = f
	if limiter != nil {
		r = newRateLimitedReader(f, limiter)
	}

	var total int64
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			if _, werr := acc.Write(chunk[:n]); werr != nil {
				return total, &PathError{Op: "hash", Path: path, Kind: ErrIO, Err: werr}
			}
			progress.Add(n)
			total += int64(n)
		}
		switch {
		case errors.Is(err, io.EOF):
			return total, nil
		case err != nil:
			return total, classify("read", path, err)
		case n == 0:
			return total, nil
		}
	}
}
