package events

// Recorder is the pending-event component composed into every aggregate.
// It keeps an ordered, append-only list of the events the aggregate has
// raised since it was last drained. The list is cleared only by an explicit
// Clear, invoked by infrastructure after successful publication.
//
// Recorder is embedded as a value rather than inherited through a deep
// base-entity chain; aggregates expose it through their own accessor
// methods so a nil aggregate can be reported as a typed error.
type Recorder struct {
	pending []DomainEvent
}

// Record appends an event to the pending list.
func (r *Recorder) Record(event DomainEvent) {
	r.pending = append(r.pending, event)
}

// Uncommitted returns the pending list in raise order. The returned slice
// is the live list, not a copy; draining is explicit via Clear.
func (r *Recorder) Uncommitted() []DomainEvent {
	return r.pending
}

// Clear empties the pending list.
func (r *Recorder) Clear() {
	r.pending = nil
}

// EventSource is implemented by every aggregate whose pending events can be
// drained by the dispatcher after a successful unit of work.
type EventSource interface {
	// UncommittedEvents returns the pending events in raise order.
	UncommittedEvents() ([]DomainEvent, error)

	// ClearEvents empties the pending list after publication.
	ClearEvents() error
}
