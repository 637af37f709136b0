// Package random provides seed generation helpers for deterministic rolls.
//
// Seeds come from crypto/rand so that unseeded rolls are unpredictable while
// any roll can still be replayed from the seed it reports.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return SeedFrom(crand.Reader)
}

// SeedFrom reads a seed from source.
func SeedFrom(source io.Reader) (int64, error) {
	if source == nil {
		return 0, errors.New("seed source is required")
	}
	var b [8]byte
	if _, err := io.ReadFull(source, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns seed unchanged unless it is zero, in which case a new
// seed is drawn from crypto/rand.
func ResolveSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}
