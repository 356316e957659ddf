package engine

import (
	"fmt"
	"os"

	"github.com/bamsammich/checksum/internal/digest"
	"github.com/bamsammich/checksum/internal/event"
	"github.com/bamsammich/checksum/internal/stats"
)

// Reporter renders progress for a run. Start is called once with the
// estimated total, Add after every chunk, and Finish when the hashing pass
// ends with its error, if any.
type Reporter interface {
	Progress
	Start(total int64)
	Finish(err error)
}

// Config describes a checksum run.
type Config struct {
	Path      string
	Recursive bool
	Algorithm string
	ChunkSize int
	BWLimit   int64 // read throughput cap in bytes/sec; zero is unlimited
	Events    event.Sink
	Reporter  Reporter
	Stats     *stats.Tracker
}

// Result is the outcome of a run. Digest is empty unless State is Done.
type Result struct {
	Digest    string
	Algorithm string
	State     State
	Stats     stats.Snapshot
	Err       error
}

// Run estimates the size of cfg.Path, then hashes it, blocking until done.
// Both passes run sequentially on the calling goroutine.
func Run(cfg Config) Result {
	r := &runner{cfg: cfg, state: Idle, tracker: cfg.Stats}
	if r.tracker == nil {
		r.tracker = stats.NewTracker()
	}
	return r.run()
}

type runner struct {
	cfg     Config
	state   State
	tracker *stats.Tracker
}

func (r *runner) run() Result {
	acc, err := digest.New(r.cfg.Algorithm)
	if err != nil {
		return r.fail(err)
	}

	if !r.cfg.Recursive {
		info, err := os.Stat(r.cfg.Path)
		if err != nil {
			return r.fail(classify("stat", r.cfg.Path, err))
		}
		if info.IsDir() {
			return r.fail(&PathError{Path: r.cfg.Path, Kind: ErrInvalidPathType, Err: errRecursiveOff})
		}
	}

	r.transition(Estimating)
	total, err := Estimate(r.cfg.Path, r.cfg.Events)
	if err != nil {
		return r.fail(err)
	}
	r.tracker.SetTotal(total)
	r.transition(EstimateComplete)
	event.Emit(r.cfg.Events, event.Event{Type: event.EstimateComplete, Path: r.cfg.Path, Total: total})

	if r.cfg.Reporter != nil {
		r.cfg.Reporter.Start(total)
	}
	hashOpts := HashOptions{
		ChunkSize: r.cfg.ChunkSize,
		Events:    event.SinkFunc(r.onFileHashed),
	}
	if r.cfg.BWLimit > 0 {
		hashOpts.Limiter = NewBWLimiter(r.cfg.BWLimit)
	}

	r.transition(Hashing)
	err = Hash(r.cfg.Path, acc, progressFunc(r.addProgress), hashOpts)
	if r.cfg.Reporter != nil {
		r.cfg.Reporter.Finish(err)
	}
	if err != nil {
		return r.fail(err)
	}

	sum := acc.SumHex()
	r.transition(Done)
	event.Emit(r.cfg.Events, event.Event{
		Type:   event.HashComplete,
		Path:   r.cfg.Path,
		Size:   r.tracker.Snapshot().Consumed,
		Digest: sum,
	})
	return Result{
		Digest:    sum,
		Algorithm: acc.Name(),
		State:     Done,
		Stats:     r.tracker.Snapshot(),
	}
}

func (r *runner) addProgress(n int) {
	r.tracker.Add(n)
	if r.cfg.Reporter != nil {
		r.cfg.Reporter.Add(n)
	}
}

func (r *runner) onFileHashed(ev event.Event) {
	r.tracker.AddFile()
	event.Emit(r.cfg.Events, ev)
}

func (r *runner) transition(to State) {
	if !CanTransition(r.state, to) {
		panic(fmt.Sprintf("engine: illegal transition %s -> %s", r.state, to))
	}
	r.state = to
	event.Emit(r.cfg.Events, event.Event{Type: event.StateChanged, State: to.String()})
}

func (r *runner) fail(err error) Result {
	r.transition(Failed)
	event.Emit(r.cfg.Events, event.Event{Type: event.RunFailed, Path: r.cfg.Path, Error: err})
	return Result{State: Failed, Err: err, Stats: r.tracker.Snapshot()}
}

// progressFunc adapts a function to Progress.
type progressFunc func(n int)

func (f progressFunc) Add(n int) { f(n) }
