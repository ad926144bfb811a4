package notify

import (
	"testing"

	"github.com/mrpasztoradam/adscore/internal/ads"
)

func TestRegisterDispatchUnregister(t *testing.T) {
	r := NewRegistry()
	sink := NewChanSink(4)
	if err := r.Register(1, sink); err != nil {
		t.Fatalf("Register: %v", err)
	}

	r.Dispatch(1, Sample{Timestamp: 42, Data: []byte{1, 2, 3}})
	select {
	case s := <-sink.C:
		if s.Timestamp != 42 {
			t.Errorf("Timestamp = %d, want 42", s.Timestamp)
		}
	default:
		t.Fatal("expected a delivered sample")
	}

	got, ok := r.Unregister(1)
	if !ok || got != sink {
		t.Fatalf("Unregister returned (%v, %v), want (sink, true)", got, ok)
	}
	if _, ok := r.Unregister(1); ok {
		t.Error("second Unregister should report absent")
	}
}

func TestRegisterRejectsDuplicateHandle(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(5, NewChanSink(1))
	err := r.Register(5, NewChanSink(1))
	if err == nil {
		t.Fatal("expected DuplicateHandleError")
	}
	if _, ok := err.(*DuplicateHandleError); !ok {
		t.Errorf("expected *DuplicateHandleError, got %T", err)
	}
}

func TestDispatchToUnknownHandleIsDropped(t *testing.T) {
	r := NewRegistry()
	r.Dispatch(999, Sample{}) // must not panic
}

func TestChanSinkDropsNewestOnFull(t *testing.T) {
	sink := NewChanSink(1)
	sink.Deliver(Sample{Data: []byte{1}})
	sink.Deliver(Sample{Data: []byte{2}}) // dropped: channel already full
	got := <-sink.C
	if got.Data[0] != 1 {
		t.Errorf("expected the first sample to survive, got %v", got.Data)
	}
	select {
	case extra := <-sink.C:
		t.Errorf("expected no second sample, got %v", extra)
	default:
	}
}

func TestTerminateAllClosesChanSinks(t *testing.T) {
	r := NewRegistry()
	sink := NewChanSink(1)
	_ = r.Register(1, sink)
	r.TerminateAll()
	if _, ok := <-sink.C; ok {
		t.Error("expected sink channel to be closed")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestDispatchStreamFansOutByHandle(t *testing.T) {
	r := NewRegistry()
	sinkA := NewChanSink(4)
	sinkB := NewChanSink(4)
	_ = r.Register(1, sinkA)
	_ = r.Register(2, sinkB)

	stream := ads.NotificationStream{
		Stamps: []ads.Stamp{
			{
				Timestamp: 100,
				Samples: []ads.Sample{
					{Handle: 1, Data: []byte{0xAA}},
					{Handle: 2, Data: []byte{0xBB}},
				},
			},
		},
	}
	r.DispatchStream(stream)

	a := <-sinkA.C
	if a.Data[0] != 0xAA {
		t.Errorf("sinkA got %v", a.Data)
	}
	b := <-sinkB.C
	if b.Data[0] != 0xBB {
		t.Errorf("sinkB got %v", b.Data)
	}
}
