package binarygap

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// ErrInvalidArgument is returned when the input is not a positive integer.
var ErrInvalidArgument = errors.New("input must be a positive integer")

// bitSource yields the bit at position i, counted from the least significant bit.
type bitSource func(i int) uint

// scanner tracks the per-bit state of a left-to-right gap scan.
type scanner struct {
	maxGap     int
	maxStart   int
	currentGap int
	gapStart   int
	seenOne    bool
}

// step consumes the bit at string offset pos.
func (s *scanner) step(bit uint, pos int) {
	if bit == 1 {
		if s.seenOne && s.currentGap > s.maxGap {
			s.maxGap = s.currentGap
			s.maxStart = s.gapStart
		}
		s.currentGap = 0
		s.gapStart = pos + 1
		s.seenOne = true
		return
	}
	// Zeros before the first one bit are not part of any gap.
	if s.seenOne {
		s.currentGap++
	}
}

// scan walks width bits from the most significant end. The trailing run after
// the final one bit is never flushed into maxGap.
func scan(width int, bit bitSource) scanner {
	var s scanner
	for i := width - 1; i >= 0; i-- {
		s.step(bit(i), width-1-i)
	}
	return s
}

// Compute returns the length of the longest binary gap of n.
// It fails with ErrInvalidArgument when n <= 0.
func Compute(n int64) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidArgument, n)
	}
	return ComputeUint(uint64(n))
}

// ComputeUint is Compute over the full unsigned 64-bit range. Zero is rejected.
func ComputeUint(n uint64) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w, got 0", ErrInvalidArgument)
	}
	s := scan(bits.Len64(n), func(i int) uint {
		return uint(n>>uint(i)) & 1
	})
	return s.maxGap, nil
}

// ComputeBig is Compute for arbitrary precision integers.
func ComputeBig(n *big.Int) (int, error) {
	if err := validateBig(n); err != nil {
		return 0, err
	}
	s := scan(n.BitLen(), n.Bit)
	return s.maxGap, nil
}

// Parse converts base-10 text into a positive integer. Surrounding whitespace
// and a leading '+' are accepted.
func Parse(text string) (*big.Int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w, got empty input", ErrInvalidArgument)
	}

	n, ok := new(big.Int).SetString(strings.TrimPrefix(trimmed, "+"), 10)
	if !ok {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidArgument, text)
	}
	if err := validateBig(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Binary returns the base-2 digits of n, most significant first, without
// leading zeros.
func Binary(n *big.Int) string {
	if n == nil {
		return ""
	}
	return n.Text(2)
}

// Result describes the longest gap found in a number.
type Result struct {
	// Value is the decimal form of the input
	Value string `yaml:"value"`
	// Binary is the bit sequence the scan ran over
	Binary string `yaml:"binary"`
	// Gap is the length of the longest enclosed zero run
	Gap int `yaml:"gap"`
	// Offset is the index in Binary where the longest gap starts, or -1 when Gap is 0
	Offset int `yaml:"offset"`
}

// Analyze computes the gap of n and locates it in the binary representation.
// When several gaps share the maximum length, the leftmost one is reported.
func Analyze(n *big.Int) (Result, error) {
	if err := validateBig(n); err != nil {
		return Result{}, err
	}

	s := scan(n.BitLen(), n.Bit)
	offset := -1
	if s.maxGap > 0 {
		offset = s.maxStart
	}

	return Result{
		Value:  n.String(),
		Binary: Binary(n),
		Gap:    s.maxGap,
		Offset: offset,
	}, nil
}

func validateBig(n *big.Int) error {
	if n == nil {
		return fmt.Errorf("%w, got nil", ErrInvalidArgument)
	}
	if n.Sign() <= 0 {
		return fmt.Errorf("%w, got %s", ErrInvalidArgument, n.String())
	}
	return nil
}
