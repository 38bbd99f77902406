package table

import (
	"encoding/binary"
	"fmt"
	"io"
)

// KQNM v1 layout (little-endian):
//
//	magic   "KQNM" (4 bytes)
//	version uint16
//	count   uint32
//	count times:
//	    key     uint16-length-prefixed string, e.g. "220"
//	    samples uint32
//	    spins   float64[samples]   ascending
//	    re      float64[samples]   Re(omega)
//	    im      float64[samples]   Im(omega)

// modeData holds one decoded mode entry.
type modeData struct {
	spins, re, im []float64
}

// readTable decodes a KQNM stream into its mode entries.
func readTable(r io.Reader) (map[string]modeData, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if magic != [4]byte{'K', 'Q', 'N', 'M'} {
		return nil, fmt.Errorf("invalid magic %q", magic)
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	if version != 1 {
		return nil, fmt.Errorf("unsupported version %d", version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("reading mode count: %w", err)
	}

	modes := make(map[string]modeData, count)
	for i := 0; i < int(count); i++ {
		key, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("reading mode key: %w", err)
		}

		var samples uint32
		if err := binary.Read(r, binary.LittleEndian, &samples); err != nil {
			return nil, fmt.Errorf("reading sample count for %q: %w", key, err)
		}

		entry := modeData{
			spins: make([]float64, samples),
			re:    make([]float64, samples),
			im:    make([]float64, samples),
		}
		for _, arr := range [][]float64{entry.spins, entry.re, entry.im} {
			if err := binary.Read(r, binary.LittleEndian, arr); err != nil {
				return nil, fmt.Errorf("reading samples for %q: %w", key, err)
			}
		}
		for j := 1; j < len(entry.spins); j++ {
			if !(entry.spins[j] > entry.spins[j-1]) {
				return nil, fmt.Errorf("spin knots not ascending in %q at index %d", key, j)
			}
		}

		modes[key] = entry
	}

	return modes, nil
}

// readString reads a uint16-length-prefixed UTF-8 string from r.
func readString(r io.Reader) (string, error) {
	var length uint16
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return "", fmt.Errorf("reading string length: %w", err)
	}
	if length == 0 {
		return "", nil
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("reading string bytes: %w", err)
	}
	return string(buf), nil
}
