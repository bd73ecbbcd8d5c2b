package ringlist

// Stats represents list stats.
type Stats struct {
	// GetCalls is the number of Get calls.
	GetCalls uint64

	// SetCalls is the number of Set calls.
	SetCalls uint64

	// InsertCalls is the number of successful Insert calls.
	InsertCalls uint64

	// RemoveCalls is the number of Remove calls.
	RemoveCalls uint64

	// ForwardSteps is the number of next links followed.
	ForwardSteps uint64

	// BackwardSteps is the number of prev links followed.
	BackwardSteps uint64
}

// Stats returns list stats.
func (l *List[V]) Stats() (stats Stats) {
	stats.GetCalls = l.stats.getcalls
	stats.SetCalls = l.stats.setcalls
	stats.InsertCalls = l.stats.insertcalls
	stats.RemoveCalls = l.stats.removecalls
	stats.ForwardSteps = l.stats.forward
	stats.BackwardSteps = l.stats.backward
	return
}
