// Copyright 2023 Phus Lu. All rights reserved.

// Package mem provides byte buffer primitives: allocation, comparison, copy, hashing and bit addressing.
package mem

import (
	"lab.nexedi.com/kirr/go123/xbytes"
)

// Pick returns a zeroed buffer of n bytes.
func Pick(n int) []byte {
	if n < 0 {
		panic("mem: negative size")
	}
	return make([]byte, n)
}

// Reset zero-fills b.
func Reset(b []byte) {
	if len(b) == 0 {
		panic("mem: reset of empty buffer")
	}
	clear(b)
}

// Resize returns b resized to n bytes, preserving content. Grown bytes are zeroed.
// The result may alias b.
func Resize(b []byte, n int) []byte {
	if n <= 0 {
		panic("mem: non-positive size")
	}
	ln := len(b)
	b = xbytes.Resize(b, n)
	if n > ln {
		clear(b[ln:])
	}
	return b
}
