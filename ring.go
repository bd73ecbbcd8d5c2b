// Copyright 2023 Phus Lu. All rights reserved.

package ringlist

import (
	"reflect"
)

// enlink makes a and b mutually adjacent.
func (l *List[V]) enlink(a, b uint32) {
	l.nodes[a].next = b
	l.nodes[b].prev = a
}

// insertAfter splices fresh right after anchor.
func (l *List[V]) insertAfter(anchor, fresh uint32) {
	next := l.nodes[anchor].next
	l.enlink(fresh, next)
	l.enlink(anchor, fresh)
}

// removeAfter detaches and returns the node right after anchor.
func (l *List[V]) removeAfter(anchor uint32) uint32 {
	p := l.nodes[anchor].next
	if p == anchor {
		panic("ringlist: remove from a trivial ring")
	}
	l.enlink(anchor, l.nodes[p].next)
	l.nodes[p].next, l.nodes[p].prev = p, p
	return p
}

// offset follows next k times if k > 0, or prev -k times if k < 0.
func (l *List[V]) offset(n uint32, k int) uint32 {
	switch {
	case k > 0:
		l.stats.forward += uint64(k)
		for ; k > 0; k-- {
			n = l.nodes[n].next
		}
	case k < 0:
		l.stats.backward += uint64(-k)
		for ; k < 0; k++ {
			n = l.nodes[n].prev
		}
	}
	return n
}

// alloc returns a detached zeroed node, reusing released slots first.
func (l *List[V]) alloc() (uint32, error) {
	if l.size >= l.maxlen {
		return 0, ErrListFull
	}
	if i := l.free; i != 0 {
		l.free = l.nodes[i].next
		l.nodes[i].next, l.nodes[i].prev = i, i
		return i, nil
	}
	i := uint32(len(l.nodes))
	l.nodes = append(l.nodes, node[V]{prev: i, next: i})
	return i, nil
}

// release drops the payload reference of a detached node and chains it for reuse.
func (l *List[V]) release(i uint32) {
	var zero V
	l.nodes[i].value = zero
	l.nodes[i].next = l.free
	l.free = i
}

// mustNotNil panics if value is a nil pointer, interface, map, slice, chan or func.
func mustNotNil[V any](value V) {
	if isNil(any(value)) {
		panic("ringlist: nil value")
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
