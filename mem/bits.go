// Copyright 2023 Phus Lu. All rights reserved.

package mem

// bitmask addresses bits big endian within a byte, bit 0 is the most significant bit of byte 0.
func bitmask(offset int) byte {
	return 1 << (7 - offset&7)
}

// TestBit reports whether the bit at offset is set in buf.
func TestBit(buf []byte, offset int) bool {
	if offset < 0 {
		panic("mem: negative bit offset")
	}
	return buf[offset>>3]&bitmask(offset) != 0
}

// SetBit sets or clears the bit at offset in buf.
func SetBit(buf []byte, offset int, value bool) {
	if offset < 0 {
		panic("mem: negative bit offset")
	}
	if value {
		buf[offset>>3] |= bitmask(offset)
	} else {
		buf[offset>>3] &^= bitmask(offset)
	}
}
