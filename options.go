// Copyright 2023 Phus Lu. All rights reserved.

package ringlist

// Option is an interface for List configuration.
type Option[V any] interface {
	ApplyToList(*List[V])
}

// WithCapacity specifies the number of nodes to preallocate.
func WithCapacity[V any](n int) Option[V] {
	return &capacityOption[V]{n: n}
}

type capacityOption[V any] struct {
	n int
}

func (o *capacityOption[V]) ApplyToList(l *List[V]) {
	if o.n < 0 {
		panic("ringlist: negative capacity")
	}
	l.nodes = make([]node[V], 1, o.n+1)
}

// WithMaxLen specifies the maximum number of elements, inserting beyond it fails with ErrListFull.
func WithMaxLen[V any](n int) Option[V] {
	return &maxlenOption[V]{n: n}
}

type maxlenOption[V any] struct {
	n int
}

func (o *maxlenOption[V]) ApplyToList(l *List[V]) {
	if o.n <= 0 || o.n > maxNodes {
		panic("ringlist: max length out of range")
	}
	l.maxlen = o.n
}
