package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

const (
	defaultBarWidth = 40
	barThrottle     = 65 * time.Millisecond
)

// barPresenter draws a live progress bar on a terminal, described by the
// human-readable total ("Hashing 312 KiB").
type barPresenter struct {
	w     io.Writer
	width int
	bar   *progressbar.ProgressBar
}

func (p *barPresenter) Start(total int64) {
	desc := "Hashing " + FormatBytes(total)
	if total <= 0 {
		// Nothing to draw a ratio against.
		fmt.Fprintf(p.w, "%s 100%%\n", desc)
		return
	}
	p.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(p.width),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(barThrottle),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(p.w) }),
	)
}

func (p *barPresenter) Add(n int) {
	if p.bar == nil || n <= 0 {
		return
	}
	_ = p.bar.Add(n) //nolint:errcheck // render errors are cosmetic
}

func (p *barPresenter) Finish(err error) {
	if p.bar == nil {
		return
	}
	if err != nil {
		_ = p.bar.Clear() //nolint:errcheck // leave the line clean for the error message
		return
	}
	_ = p.bar.Finish() //nolint:errcheck // render errors are cosmetic
}
