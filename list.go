// Copyright 2023 Phus Lu. All rights reserved.

// Package ringlist implements an index-addressable circular list over a sentinel node.
package ringlist

import (
	"math"

	"github.com/pkg/errors"
)

// maxNodes bounds the arena so that every slot is addressable by uint32.
const maxNodes = math.MaxInt32

// ErrListFull is returned when the node arena cannot hold another node.
var ErrListFull = errors.New("ringlist: list is full")

// node is a ring linkage slot. next is the owning direction, prev is a back reference.
type node[V any] struct {
	prev  uint32
	next  uint32
	value V
}

// List is a circular doubly linked list addressed by wrap-around integer index.
//
// The nodes live in an arraylist to reduce GC efforts, node 0 is the sentinel.
// Negative indices count from the back, and index i denotes the same element as i+Len().
// List is not safe for concurrent use, see SyncList.
type List[V any] struct {
	nodes  []node[V]
	free   uint32 // head of released slots chained by next, 0 if none
	size   int
	maxlen int
	stats  struct {
		getcalls    uint64
		setcalls    uint64
		insertcalls uint64
		removecalls uint64
		forward     uint64
		backward    uint64
	}
}

// New creates an empty list.
func New[V any](options ...Option[V]) *List[V] {
	l := &List[V]{maxlen: maxNodes}
	for _, o := range options {
		o.ApplyToList(l)
	}
	if l.nodes == nil {
		l.nodes = make([]node[V], 1, 8)
	}
	l.enlink(0, 0) // cyclic
	return l
}

// Free releases every node including the sentinel. The list must not be used afterwards.
func (l *List[V]) Free() {
	l.Clear()
	l.nodes = nil
}

// Clear removes every element.
func (l *List[V]) Clear() {
	for !l.IsEmpty() {
		l.release(l.removeAfter(0))
		l.size--
	}
	l.nodes = l.nodes[:1]
	l.free = 0
}

// Len returns the number of elements.
func (l *List[V]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.Len() == 0
}

// Get returns the value at index without detaching it.
func (l *List[V]) Get(index int) V {
	l.mustNotEmpty("Get")
	l.stats.getcalls++
	return l.nodes[l.element(index)].value
}

// Set replaces the value at index and returns the previous one.
func (l *List[V]) Set(index int, value V) (prev V) {
	l.mustNotEmpty("Set")
	mustNotNil(value)
	l.stats.setcalls++
	n := &l.nodes[l.element(index)]
	prev, n.value = n.value, value
	return
}

// Insert adds value so that Get(index) returns it afterwards.
// Insert(0, v) prepends, Insert(Len(), v) and Insert(-1, v) append.
func (l *List[V]) Insert(index int, value V) {
	if err := l.TryInsert(index, value); err != nil {
		panic(err)
	}
}

// TryInsert is like Insert but returns ErrListFull when no node can be allocated.
func (l *List[V]) TryInsert(index int, value V) error {
	mustNotNil(value)
	// a list of size n has n+1 insertion slots.
	anchor := l.offset(0, betterIndex(l.size+1, index))
	fresh, err := l.alloc()
	if err != nil {
		return errors.WithMessagef(err, "insert at %d", index)
	}
	l.nodes[fresh].value = value
	l.insertAfter(anchor, fresh)
	l.size++
	l.stats.insertcalls++
	return nil
}

// Remove detaches the element at index and returns its value.
func (l *List[V]) Remove(index int) V {
	l.mustNotEmpty("Remove")
	l.stats.removecalls++
	p := l.removeAfter(l.nodes[l.element(index)].prev)
	l.size--
	value := l.nodes[p].value
	l.release(p)
	return value
}

// IndexOf scans forward from the element at start to the back of the list and
// returns the index of the first value that compares equal, or -1 if none does.
// The returned index is in [0, Len()).
func (l *List[V]) IndexOf(start int, value V, compare func(a, b V) int) int {
	if l.IsEmpty() {
		return -1
	}
	start = betterIndex(l.size, start)
	p := l.offset(0, elementOffset(start))
	if start < 0 {
		start += l.size
	}
	for p != 0 {
		if compare(l.nodes[p].value, value) == 0 {
			return start
		}
		p = l.offset(p, 1)
		start++
	}
	return -1
}

// element resolves index to the arena slot holding the element.
func (l *List[V]) element(index int) uint32 {
	return l.offset(0, elementOffset(betterIndex(l.size, index)))
}

func (l *List[V]) mustNotEmpty(op string) {
	if l.size == 0 {
		panic("ringlist: " + op + " on empty list")
	}
}
