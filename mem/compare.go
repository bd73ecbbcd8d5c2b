// Copyright 2023 Phus Lu. All rights reserved.

package mem

import (
	"encoding/binary"
	"unsafe"
)

const wordSize = 8

// wordThreshold is the common length from which Compare goes word at a time.
const wordThreshold = 24

// Compare returns -1, 0 or +1 as a sorts before, equal to or after b.
// A nil buffer sorts before any non-nil buffer, the empty one included.
// When one buffer is a prefix of the other the shorter one sorts first.
func Compare(a, b []byte) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case len(a) == len(b) && (len(a) == 0 || unsafe.SliceData(a) == unsafe.SliceData(b)):
		return 0
	}

	n := min(len(a), len(b))
	i := 0
	if n >= wordThreshold {
		for ; n-i >= wordSize; i += wordSize {
			// big endian load keeps word order lexicographic.
			w1 := binary.BigEndian.Uint64(a[i:])
			w2 := binary.BigEndian.Uint64(b[i:])
			if w1 != w2 {
				if w1 < w2 {
					return -1
				}
				return 1
			}
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Copy copies the first n bytes of src into dst.
// Overlapping buffers are handled like the copy builtin.
func Copy(dst, src []byte, n int) {
	if dst == nil || src == nil {
		panic("mem: nil buffer")
	}
	if n < 0 {
		panic("mem: negative size")
	}
	if n > len(dst) || n > len(src) {
		panic("mem: short buffer")
	}
	copy(dst[:n], src[:n])
}
