// Package bitfield reads and writes unsigned sub-ranges of fixed-width packed words.
//
// A range is addressed by its lowest bit (start) and its width, so the field
// occupying bits [start, start+width) of an 8-bit word is read with
// GetRange(word, start, width).
package bitfield

import (
	"fmt"
	"math/bits"
	"strings"
)

// Word is any fixed-width unsigned integer a record can be packed into.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DomainError reports a range that does not fit inside the word.
type DomainError struct {
	Start     int
	Width     int
	WordWidth int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("bitfield: range [%d,%d) does not fit a %d-bit word", e.Start, e.Start+e.Width, e.WordWidth)
}

// WordWidth returns the number of bits in W.
func WordWidth[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

func checkRange[W Word](start, width int) error {
	ww := WordWidth[W]()
	if start < 0 || width < 0 || start > ww || width > ww-start {
		return &DomainError{Start: start, Width: width, WordWidth: ww}
	}
	return nil
}

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// GetRange returns the unsigned value stored in [start, start+width).
func GetRange[W Word](word W, start, width int) (int, error) {
	if err := checkRange[W](start, width); err != nil {
		return 0, err
	}
	return int((uint64(word) >> uint(start)) & mask(width)), nil
}

// SetRange clears [start, start+width) and stores value there.
// Bits of value above width are silently dropped.
func SetRange[W Word](word W, value, start, width int) (W, error) {
	if err := checkRange[W](start, width); err != nil {
		return word, err
	}
	m := mask(width) << uint(start)
	w := uint64(word) &^ m
	w |= (uint64(value) << uint(start)) & m
	return W(w), nil
}

// Get is GetRange for fixed layouts. It panics on a bad range.
func Get[W Word](word W, start, width int) int {
	v, err := GetRange(word, start, width)
	if err != nil {
		panic(err)
	}
	return v
}

// Set stores value like SetRange but refuses to truncate: a negative value or
// one wider than the field panics.
func Set[W Word](word W, value, start, width int) W {
	if value < 0 || uint64(value) > mask(width) {
		panic(fmt.Sprintf("bitfield: value %d does not fit %d-bit field at bit %d", value, width, start))
	}
	w, err := SetRange(word, value, start, width)
	if err != nil {
		panic(err)
	}
	return w
}

// Flag reports whether a single bit is set.
func Flag[W Word](word W, bit int) bool {
	return Get(word, bit, 1) == 1
}

// SetFlag sets or clears a single bit.
func SetFlag[W Word](word W, bit int, on bool) W {
	v := 0
	if on {
		v = 1
	}
	return Set(word, v, bit, 1)
}

// Format renders the word most significant bit first, grouped by byte.
func Format[W Word](word W) string {
	ww := WordWidth[W]()
	var b strings.Builder
	for i := ww - 1; i >= 0; i-- {
		if Flag(word, i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
