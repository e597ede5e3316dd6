package board

import (
	"math/bits"
	"strings"
)

// Digit is a Sudoku digit in the range 1-9.
// The zero value marks an empty cell in boundary representations.
type Digit uint8

// Valid reports whether d is a playable digit.
func (d Digit) Valid() bool { return d >= 1 && d <= 9 }

// NumberSet is a set of digits 1-9 packed into the low 9 bits of a uint16.
// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
// The zero value is the empty set.
type NumberSet uint16

// FullSet contains every digit 1-9.
const FullSet NumberSet = 1<<9 - 1

func digitBit(d Digit) NumberSet { return 1 << (d - 1) }

// SetOf builds a NumberSet containing the given digits.
func SetOf(digits ...Digit) NumberSet {
	var s NumberSet
	for _, d := range digits {
		s.Insert(d)
	}
	return s
}

// Contains reports whether d is in the set.
func (s NumberSet) Contains(d Digit) bool { return s&digitBit(d) != 0 }

// Insert adds d to the set. Inserting a digit already present is a no-op.
func (s *NumberSet) Insert(d Digit) { *s |= digitBit(d) }

// Remove deletes d from the set. Removing an absent digit is a no-op.
func (s *NumberSet) Remove(d Digit) { *s &^= digitBit(d) }

// Union returns the digits present in either set.
func (s NumberSet) Union(t NumberSet) NumberSet { return s | t }

// Intersect returns the digits present in both sets.
func (s NumberSet) Intersect(t NumberSet) NumberSet { return s & t }

// Difference returns the digits in s that are not in t.
func (s NumberSet) Difference(t NumberSet) NumberSet { return s &^ t }

// IsEmpty reports whether the set contains no digits.
func (s NumberSet) IsEmpty() bool { return s == 0 }

// Count returns the number of digits in the set.
func (s NumberSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Single returns the set's only digit. The second return value is false
// unless the set contains exactly one digit.
func (s NumberSet) Single() (Digit, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return Digit(bits.TrailingZeros16(uint16(s)) + 1), true
}

// Digits returns the members of the set in ascending order.
func (s NumberSet) Digits() []Digit {
	out := make([]Digit, 0, s.Count())
	for d := Digit(1); d <= 9; d++ {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the set as "{1 4 9}".
func (s NumberSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, d := range s.Digits() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + byte(d))
	}
	sb.WriteByte('}')
	return sb.String()
}
