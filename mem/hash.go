// Copyright 2023 Phus Lu. All rights reserved.

package mem

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	gomem "lab.nexedi.com/kirr/go123/mem"
)

// BKDR returns the BKDR hash of p with seed 31: h = h*31 + c.
func BKDR(p []byte) int32 {
	var h int32
	for _, c := range p {
		h = h<<5 - h + int32(c)
	}
	return h
}

// DJB returns the DJB hash of p with seed 5381: h = h*33 + c.
func DJB(p []byte) int32 {
	var h int32 = 5381
	for _, c := range p {
		h = h<<5 + h + int32(c)
	}
	return h
}

// BKDRString is BKDR over the bytes of s without copying them.
func BKDRString(s string) int32 {
	return BKDR(gomem.Bytes(s))
}

// DJBString is DJB over the bytes of s without copying them.
func DJBString(s string) int32 {
	return DJB(gomem.Bytes(s))
}

// SipHash returns the keyed SipHash-2-4 of p, key is read as two little endian words.
func SipHash(key [16]byte, p []byte) uint64 {
	k0 := binary.LittleEndian.Uint64(key[:8])
	k1 := binary.LittleEndian.Uint64(key[8:])
	return siphash.Hash(k0, k1, p)
}

// XXHash returns the 64-bit xxHash of p.
func XXHash(p []byte) uint64 {
	return xxhash.Sum64(p)
}
