// Package digest provides the hash accumulator fed by the streaming hasher.
package digest

import (
	"crypto/md5" //nolint:gosec // G501: checksum, not a security boundary
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// Default is the algorithm used when none is configured.
const Default = "md5"

var (
	// ErrUnknownAlgorithm is returned by New for an unregistered algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrFinalized is returned by Write once Sum has been called.
	ErrFinalized = errors.New("accumulator already finalized")
)

var registry = map[string]func() hash.Hash{
	"md5":    md5.New,
	"blake3": func() hash.Hash { return blake3.New() },
	"xxh64":  func() hash.Hash { return xxhash.New() },
}

// Algorithms returns the supported algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Accumulator is the running state of a single hash computation.
// The digest depends only on the ordered concatenation of bytes written.
type Accumulator struct {
	name   string
	h      hash.Hash
	sum    []byte
	closed bool
}

// New creates an accumulator for the named algorithm (case-insensitive).
func New(name string) (*Accumulator, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = Default
	}
	newHash, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %s)",
			ErrUnknownAlgorithm, name, strings.Join(Algorithms(), ", "))
	}
	return &Accumulator{name: name, h: newHash()}, nil
}

// Name returns the algorithm name.
func (a *Accumulator) Name() string { return a.name }

// Write feeds p into the hash state.
func (a *Accumulator) Write(p []byte) (int, error) {
	if a.closed {
		return 0, ErrFinalized
	}
	return a.h.Write(p)
}

// Sum finalizes the accumulator and returns the raw digest.
// Repeated calls return the same digest.
func (a *Accumulator) Sum() []byte {
	if !a.closed {
		a.sum = a.h.Sum(nil)
		a.closed = true
	}
	return slices.Clone(a.sum)
}

// SumHex returns the lowercase hex digest.
func (a *Accumulator) SumHex() string { return hex.EncodeToString(a.Sum()) }
