package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Reader provides read-only access to progress counters.
type Reader interface {
	Snapshot() Snapshot
}

// Tracker holds the progress state of one run: the expected byte total,
// set once after estimation, and the bytes consumed so far.
type Tracker struct {
	total     atomic.Int64
	totalSet  atomic.Bool
	consumed  atomic.Int64
	files     atomic.Int64
	startTime time.Time
}

// NewTracker creates a Tracker with startTime set to now.
func NewTracker() *Tracker {
	return &Tracker{startTime: time.Now()}
}

// SetTotal records the estimated total. Only the first call has effect.
func (t *Tracker) SetTotal(n int64) {
	if t.totalSet.CompareAndSwap(false, true) {
		t.total.Store(n)
	}
}

// Add records n consumed bytes. Non-positive increments are ignored so the
// counter only ever grows.
func (t *Tracker) Add(n int) {
	if n > 0 {
		t.consumed.Add(int64(n))
	}
}

// AddFile records one fully hashed file.
func (t *Tracker) AddFile() { t.files.Add(1) }

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	Total    int64
	Consumed int64
	Files    int64
	Elapsed  time.Duration
}

// Snapshot returns a point-in-time read of all counters.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Total:    t.total.Load(),
		Consumed: t.consumed.Load(),
		Files:    t.files.Load(),
		Elapsed:  time.Since(t.startTime),
	}
}

// Fraction returns consumed/total in [0, 1]. An empty total counts as complete.
func (s Snapshot) Fraction() float64 {
	if s.Total <= 0 {
		return 1
	}
	f := float64(s.Consumed) / float64(s.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Rate returns the average bytes/sec since the tracker was created.
func (s Snapshot) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Consumed) / s.Elapsed.Seconds()
}

// ETA estimates the remaining time from the average rate.
func (s Snapshot) ETA() time.Duration {
	rate := s.Rate()
	remaining := s.Total - s.Consumed
	if rate <= 0 || remaining <= 0 {
		return 0
	}
	return time.Duration(float64(remaining) / rate * float64(time.Second))
}

func (s Snapshot) String() string {
	return fmt.Sprintf("total=%d consumed=%d files=%d", s.Total, s.Consumed, s.Files)
}
