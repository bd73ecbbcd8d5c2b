// Copyright 2023 Phus Lu. All rights reserved.

package ringlist

// PushFront inserts value as the first element.
func (l *List[V]) PushFront(value V) {
	l.Insert(0, value)
}

// PushBack inserts value as the last element.
func (l *List[V]) PushBack(value V) {
	l.Insert(l.size, value)
}

// Contains reports whether some element compares equal to value.
func (l *List[V]) Contains(value V, compare func(a, b V) int) bool {
	return l.IndexOf(0, value, compare) >= 0
}

// Range calls fn for each element from front to back until fn returns false.
// fn must not modify the list.
func (l *List[V]) Range(fn func(index int, value V) bool) {
	for i, p := 0, l.nodes[0].next; p != 0; i, p = i+1, l.nodes[p].next {
		if !fn(i, l.nodes[p].value) {
			return
		}
	}
}

// AppendValues appends all values in index order to values and returns the values.
func (l *List[V]) AppendValues(values []V) []V {
	for p := l.nodes[0].next; p != 0; p = l.nodes[p].next {
		values = append(values, l.nodes[p].value)
	}
	return values
}
