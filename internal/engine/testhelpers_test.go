package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bamsammich/checksum/internal/event"
)

// createTestTree populates root with a standard test tree:
//
//	root.txt          (17 bytes)
//	big.bin           (320KB)
//	sub/mid.txt       (19 bytes)
//	sub/deep/leaf.txt (17 bytes)
//	empty/            (directory)
func createTestTree(t *testing.T, root string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deep"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	writeFile(t, filepath.Join(root, "root.txt"), "root file content")
	writeFile(t, filepath.Join(root, "big.bin"),
		string(bytes.Repeat([]byte("ABCDEFGHIJKLMNOP"), 20000)))
	writeFile(t, filepath.Join(root, "sub", "mid.txt"), "middle file content")
	writeFile(t, filepath.Join(root, "sub", "deep", "leaf.txt"), "leaf file content")
}

const testTreeSize = 17 + 320000 + 19 + 17

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// recordingProgress remembers every increment it receives.
type recordingProgress struct {
	calls []int
}

func (p *recordingProgress) Add(n int) { p.calls = append(p.calls, n) }

func (p *recordingProgress) sum() int64 {
	var total int64
	for _, n := range p.calls {
		total += int64(n)
	}
	return total
}

// eventLog collects events emitted during a test.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) Emit(ev event.Event) { l.events = append(l.events, ev) }

func (l *eventLog) ofType(typ event.Type) []event.Event {
	var out []event.Event
	for _, ev := range l.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}
