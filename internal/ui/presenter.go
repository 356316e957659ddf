package ui

import (
	"io"

	"github.com/bamsammich/checksum/internal/stats"
)

// Presenter renders hashing progress. It satisfies engine.Reporter.
type Presenter interface {
	// Start is called once with the estimated byte total.
	Start(total int64)
	// Add advances the display by n bytes.
	Add(n int)
	// Finish ends the display; err is the outcome of the hashing pass.
	Finish(err error)
}

// Config configures a Presenter.
type Config struct {
	Writer     io.Writer
	Stats      stats.Reader
	Width      int
	IsTTY      bool
	Quiet      bool
	NoProgress bool
}

// NewPresenter creates the appropriate presenter based on configuration.
//
//nolint:ireturn // factory function returns interface by design
func NewPresenter(cfg Config) Presenter {
	if cfg.Quiet || cfg.NoProgress {
		return &quietPresenter{}
	}
	if !cfg.IsTTY {
		return newPlainPresenter(cfg.Writer, cfg.Stats)
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultBarWidth
	}
	return &barPresenter{w: cfg.Writer, width: width}
}
