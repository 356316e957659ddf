package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/bamsammich/checksum/internal/stats"
)

const plainInterval = 5 * time.Second

// plainPresenter prints a periodic progress line when output is not a TTY,
// plus a final line when hashing completes.
type plainPresenter struct {
	w        io.Writer
	stats    stats.Reader
	interval time.Duration
	now      func() time.Time

	total    int64
	consumed int64
	last     time.Time
}

func newPlainPresenter(w io.Writer, st stats.Reader) *plainPresenter {
	return &plainPresenter{w: w, stats: st, interval: plainInterval, now: time.Now}
}

func (p *plainPresenter) Start(total int64) {
	p.total = total
	p.last = p.now()
}

func (p *plainPresenter) Add(n int) {
	if n <= 0 {
		return
	}
	p.consumed += int64(n)
	if now := p.now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.printProgress()
	}
}

func (p *plainPresenter) Finish(err error) {
	if err != nil {
		return
	}
	p.printProgress()
}

func (p *plainPresenter) printProgress() {
	snap := stats.Snapshot{Total: p.total, Consumed: p.consumed}
	line := fmt.Sprintf("progress: %s %s/%s",
		FormatPercent(snap.Fraction()),
		FormatBytes(snap.Consumed), FormatBytes(snap.Total),
	)
	if p.stats != nil {
		live := p.stats.Snapshot()
		line += fmt.Sprintf(" %s eta %s", FormatRate(live.Rate()), FormatETA(live.ETA()))
	}
	fmt.Fprintln(p.w, line)
}
