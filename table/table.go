// Package table bundles and reads the per-l quasinormal-mode sample
// tables.
//
// Each embedded data/l{L}.kqnm file carries every (|m|, n) combination
// for one l value, keyed by the digit string "{l}{|m|}{n}". A mode
// entry holds ascending spin knots on [-0.9997, 0.9997] and the
// matching complex omega samples, stored as separate real and
// imaginary arrays. The values derive from the Berti, Cardoso & Will
// fits (arXiv:gr-qc/0512160).
package table

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed data/*.kqnm
var tableFS embed.FS

// Component selects which part of omega Samples returns.
type Component int

const (
	Real Component = iota
	Imaginary
)

// Errors returned by Samples.
var (
	ErrModeNotFound = errors.New("table: no data for mode")
	ErrBadComponent = errors.New("table: component must be Real or Imaginary")
)

// Samples returns the spin knots and one omega component for mode
// (l, m, n). The sign of m is ignored; data is stored per |m|. The
// embedded resource for l is opened, decoded and released on every
// call; callers are expected to cache the result.
func Samples(c Component, l, m, n int) (spins, omega []float64, err error) {
	if c != Real && c != Imaginary {
		return nil, nil, fmt.Errorf("%w, got %d", ErrBadComponent, c)
	}
	mAbs := m
	if mAbs < 0 {
		mAbs = -mAbs
	}

	blob, err := tableFS.ReadFile(fmt.Sprintf("data/l%d.kqnm", l))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: lmn=%d,%d,%d", ErrModeNotFound, l, m, n)
	}
	modes, err := readTable(bytes.NewReader(blob))
	if err != nil {
		return nil, nil, fmt.Errorf("table: decoding l%d table: %w", l, err)
	}

	entry, ok := modes[fmt.Sprintf("%d%d%d", l, mAbs, n)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: lmn=%d,%d,%d", ErrModeNotFound, l, m, n)
	}
	if c == Real {
		return entry.spins, entry.re, nil
	}
	return entry.spins, entry.im, nil
}

// ModeID identifies one bundled mode.
type ModeID struct {
	L, M, N int
}

// Modes enumerates every mode present in the bundled tables, sorted by
// (l, m, n).
func Modes() ([]ModeID, error) {
	files, err := fs.Glob(tableFS, "data/l*.kqnm")
	if err != nil {
		return nil, fmt.Errorf("table: listing bundled tables: %w", err)
	}

	var ids []ModeID
	for _, name := range files {
		blob, err := tableFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("table: reading %s: %w", name, err)
		}
		modes, err := readTable(bytes.NewReader(blob))
		if err != nil {
			return nil, fmt.Errorf("table: decoding %s: %w", name, err)
		}
		for key := range modes {
			if len(key) != 3 {
				return nil, fmt.Errorf("table: malformed mode key %q in %s", key, name)
			}
			ids = append(ids, ModeID{
				L: int(key[0] - '0'),
				M: int(key[1] - '0'),
				N: int(key[2] - '0'),
			})
		}
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].L != ids[j].L {
			return ids[i].L < ids[j].L
		}
		if ids[i].M != ids[j].M {
			return ids[i].M < ids[j].M
		}
		return ids[i].N < ids[j].N
	})
	return ids, nil
}
