// Copyright 2023 Phus Lu. All rights reserved.

package ringlist

// SyncList is a List guarded by one exclusive lock, every method holds it for the whole operation.
type SyncList[V any] struct {
	mu   spinlock
	list *List[V]
}

// NewSyncList creates an empty list that is safe for concurrent use.
func NewSyncList[V any](options ...Option[V]) *SyncList[V] {
	return &SyncList[V]{list: New[V](options...)}
}

// Len returns the number of elements.
func (s *SyncList[V]) Len() int {
	s.mu.Lock()
	n := s.list.Len()
	s.mu.Unlock()
	return n
}

// Get returns the value at index, or false if the list is empty.
func (s *SyncList[V]) Get(index int) (value V, ok bool) {
	s.mu.Lock()
	if !s.list.IsEmpty() {
		value, ok = s.list.Get(index), true
	}
	s.mu.Unlock()
	return
}

// Set replaces the value at index and returns the previous one, or false if the list is empty.
func (s *SyncList[V]) Set(index int, value V) (prev V, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.list.IsEmpty() {
		return
	}
	return s.list.Set(index, value), true
}

// Insert adds value so that it ends up at index.
func (s *SyncList[V]) Insert(index int, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.TryInsert(index, value)
}

// Remove detaches the element at index and returns its value, or false if the list is empty.
func (s *SyncList[V]) Remove(index int) (value V, ok bool) {
	s.mu.Lock()
	if !s.list.IsEmpty() {
		value, ok = s.list.Remove(index), true
	}
	s.mu.Unlock()
	return
}

// IndexOf returns the index of the first element at or after start that compares equal to value, or -1.
func (s *SyncList[V]) IndexOf(start int, value V, compare func(a, b V) int) int {
	s.mu.Lock()
	i := s.list.IndexOf(start, value, compare)
	s.mu.Unlock()
	return i
}

// Clear removes every element.
func (s *SyncList[V]) Clear() {
	s.mu.Lock()
	s.list.Clear()
	s.mu.Unlock()
}

// AppendValues appends all values in index order to values and returns the values.
func (s *SyncList[V]) AppendValues(values []V) []V {
	s.mu.Lock()
	values = s.list.AppendValues(values)
	s.mu.Unlock()
	return values
}

// Stats returns list stats.
func (s *SyncList[V]) Stats() Stats {
	s.mu.Lock()
	stats := s.list.Stats()
	s.mu.Unlock()
	return stats
}
