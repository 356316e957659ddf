package engine

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// NewBWLimiter creates a rate.Limiter that caps read throughput to
// bytesPerSec. The burst is 1 MB, or bytesPerSec when that is smaller.
func NewBWLimiter(bytesPerSec int64) *rate.Limiter {
	burst := 1 << 20 // 1 MB
	if bytesPerSec < int64(burst) {
		burst = int(bytesPerSec)
	}
	return rate.NewLimiter(rate.Limit(bytesPerSec), burst)
}

// rateLimitedReader throttles reads from r. It blocks the calling goroutine;
// a run has no cancellation, so waits use a background context.
type rateLimitedReader struct {
	r       io.Reader
	limiter *rate.Limiter
}

func newRateLimitedReader(r io.Reader, limiter *rate.Limiter) *rateLimitedReader {
	return &rateLimitedReader{r: r, limiter: limiter}
}

func (rl *rateLimitedReader) Read(p []byte) (int, error) {
	n, err := rl.r.Read(p)
	// WaitN rejects requests above the burst, so large chunks wait in pieces.
	for remaining := n; remaining > 0; {
		step := min(remaining, rl.limiter.Burst())
		if waitErr := rl.limiter.WaitN(context.Background(), step); waitErr != nil {
			return n, waitErr
		}
		remaining -= step
	}
	return n, err
}
