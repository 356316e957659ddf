package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseSize parses a human-readable byte size such as "128K", "1.5G" or
// "64 MiB". A bare unit letter (K, M, G, T, P, E) means a power of 1024;
// spelled-out units follow humanize, so "1kB" is 1000 and "1KiB" is 1024.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative size: %q", s)
	}

	in := s
	if strings.ContainsRune("kKmMgGtTpPeE", rune(s[len(s)-1])) {
		in += "i"
	}
	n, err := humanize.ParseBytes(in)
	if err != nil {
		return 0, fmt.Errorf("invalid size: %q", s)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("size out of range: %q", s)
	}
	return int64(n), nil
}
