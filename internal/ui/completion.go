package ui

import (
	"fmt"

	"github.com/bamsammich/checksum/internal/stats"
)

// CompletionSummary builds a final summary line from a snapshot.
// Format: done ✓  files 48,917  size 2.1 GiB  avg 641 MiB/s  time 3m 17s
func CompletionSummary(snap stats.Snapshot) string {
	icon := "✓"
	if snap.Consumed != snap.Total {
		// The tree changed between the estimate and the hashing pass.
		icon = "✗"
	}
	return fmt.Sprintf("done %s  files %s  size %s  avg %s  time %s",
		icon,
		FormatCount(snap.Files),
		FormatBytes(snap.Consumed),
		FormatRate(snap.Rate()),
		FormatDuration(snap.Elapsed),
	)
}
