package engine

import (
	"github.com/bamsammich/checksum/internal/event"
)

// Estimate returns the total size of root: its metadata size when root is a
// regular file, otherwise the sum over all descendant regular files. Only
// metadata is read. A PathVisited event is emitted for every path before it
// is measured, including one whose stat then fails. Any error aborts the
// estimate; no partial sum is returned.
func Estimate(root string, events event.Sink) (int64, error) {
	var total int64
	before := func(path string) {
		event.Emit(events, event.Event{Type: event.PathVisited, Path: path})
	}
	err := walk(root, before, func(n Node) error {
		if n.Kind == File {
			total += n.Size
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
