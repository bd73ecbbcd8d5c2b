// Copyright 2023 Phus Lu. All rights reserved.

package ringlist

// shortList is the largest size for which betterIndex never flips direction.
const shortList = 6

// betterIndex reduces index modulo size and, for lists longer than shortList,
// re-expresses it in the direction that is shorter to walk from the sentinel.
//
// The ring holds size+1 nodes (the sentinel included), so flipping an element
// offset by size+1 is the same as moving the logical index by size.
// An empty list returns index unchanged.
func betterIndex(size, index int) int {
	if size == 0 {
		return index
	}
	index = index % size
	if size > shortList {
		if index >= 0 {
			if index > size/2+1 {
				index -= size
			}
		} else {
			if index < -size/2-1 {
				index += size
			}
		}
	}
	return index
}

// elementOffset turns a normalized index into an offset from the sentinel.
func elementOffset(index int) int {
	if index >= 0 {
		return index + 1
	}
	return index
}
