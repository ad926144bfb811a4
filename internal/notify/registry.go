// Package notify implements the notification registry: the mapping
// from a server-issued notification handle to the sink a subscriber
// reads samples from. It is deliberately independent of the pending
// request table — handles and invoke IDs are different key spaces with
// different lifetimes.
package notify

import (
	"fmt"
	"sync"

	"github.com/mrpasztoradam/adscore/internal/ads"
)

// Sample is one delivered notification: a timestamp plus the raw
// payload bytes for a single handle.
type Sample struct {
	Timestamp ads.FileTime
	Data      []byte
}

// Sink receives samples for a registered handle. Deliver must not block
// indefinitely; a sink backed by a bounded channel should use a
// non-blocking send and drop on a full channel (see ChanSink).
type Sink interface {
	Deliver(Sample)
}

// ChanSink adapts a buffered channel into a Sink using a drop-newest
// overflow policy: when the channel is full, the new sample is dropped
// rather than blocking the reader. Grounded on the teacher's
// Subscription.notify, which does the same non-blocking select/default
// send over its own per-subscription channel.
type ChanSink struct {
	C chan Sample
}

// NewChanSink creates a ChanSink with the given channel capacity.
func NewChanSink(capacity int) *ChanSink {
	return &ChanSink{C: make(chan Sample, capacity)}
}

func (s *ChanSink) Deliver(sample Sample) {
	select {
	case s.C <- sample:
	default:
		// Full: drop-newest. The registry's documented overflow policy.
	}
}

// DuplicateHandleError reports a Register call for a handle that is
// already live, indicating the caller and the registry have gone out of
// sync (a programmer error, not a transient condition).
type DuplicateHandleError struct {
	Handle uint32
}

func (e *DuplicateHandleError) Error() string {
	return fmt.Sprintf("notify: handle %d is already registered", e.Handle)
}

// Registry holds the live handle -> sink mapping for one session.
type Registry struct {
	mu    sync.RWMutex
	sinks map[uint32]Sink
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sinks: make(map[uint32]Sink)}
}

// Register inserts sink under handle. Fails with DuplicateHandleError if
// handle is already registered.
func (r *Registry) Register(handle uint32, sink Sink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sinks[handle]; exists {
		return &DuplicateHandleError{Handle: handle}
	}
	r.sinks[handle] = sink
	return nil
}

// Unregister removes handle's sink and returns it, or (nil, false) if
// absent.
func (r *Registry) Unregister(handle uint32) (Sink, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sink, ok := r.sinks[handle]
	if ok {
		delete(r.sinks, handle)
	}
	return sink, ok
}

// Dispatch delivers sample to handle's sink. A miss (handle not
// registered, typically because Unregister raced with an in-flight
// sample) is silently dropped.
func (r *Registry) Dispatch(handle uint32, sample Sample) {
	r.mu.RLock()
	sink, ok := r.sinks[handle]
	r.mu.RUnlock()
	if ok {
		sink.Deliver(sample)
	}
}

// DispatchStream fans a decoded notification stream out to the
// registry's sinks, one Dispatch per sample.
func (r *Registry) DispatchStream(stream ads.NotificationStream) {
	stream.Iterate(func(timestamp ads.FileTime, sample *ads.Sample) {
		data := make([]byte, len(sample.Data))
		copy(data, sample.Data)
		r.Dispatch(sample.Handle, Sample{Timestamp: timestamp, Data: data})
	})
}

// TerminateAll closes every live sink's channel-backed delivery path by
// unregistering it. Called on connection teardown so subscribers
// observe their subscription as terminated rather than silently going
// quiet. Sinks that are not *ChanSink are left to the caller.
func (r *Registry) TerminateAll() {
	r.mu.Lock()
	sinks := r.sinks
	r.sinks = make(map[uint32]Sink)
	r.mu.Unlock()
	for _, sink := range sinks {
		if cs, ok := sink.(*ChanSink); ok {
			close(cs.C)
		}
	}
}

// Len reports the number of currently registered handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sinks)
}
