package ads

import (
	"bytes"
	"testing"
)

func buildStream() NotificationStream {
	return NotificationStream{
		Stamps: []Stamp{
			{
				Timestamp: FileTime(133_503_504_000_000_000),
				Samples: []Sample{
					{Handle: 1, Data: []byte{1, 2, 3, 4}},
					{Handle: 2, Data: []byte{5, 6}},
				},
			},
			{
				Timestamp: FileTime(133_503_504_100_000_000),
				Samples: []Sample{
					{Handle: 3, Data: []byte{}},
				},
			},
		},
	}
}

func TestNotificationStreamRoundTrip(t *testing.T) {
	want := buildStream()
	buf, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	got, err := DecodeNotificationStream(buf)
	if err != nil {
		t.Fatalf("DecodeNotificationStream: %v", err)
	}
	if len(got.Stamps) != len(want.Stamps) {
		t.Fatalf("got %d stamps, want %d", len(got.Stamps), len(want.Stamps))
	}
	for i := range want.Stamps {
		if got.Stamps[i].Timestamp != want.Stamps[i].Timestamp {
			t.Errorf("stamp %d timestamp = %d, want %d", i, got.Stamps[i].Timestamp, want.Stamps[i].Timestamp)
		}
		for j := range want.Stamps[i].Samples {
			gs, ws := got.Stamps[i].Samples[j], want.Stamps[i].Samples[j]
			if gs.Handle != ws.Handle || !bytes.Equal(gs.Data, ws.Data) {
				t.Errorf("stamp %d sample %d = %+v, want %+v", i, j, gs, ws)
			}
		}
	}

	reencoded, err := got.MarshalBinary()
	if err != nil {
		t.Fatalf("re-MarshalBinary: %v", err)
	}
	if !bytes.Equal(reencoded, buf) {
		t.Error("decode then re-encode did not round-trip to identical bytes")
	}
}

func TestNotificationStreamZeroCopy(t *testing.T) {
	want := buildStream()
	buf, _ := want.MarshalBinary()
	got, err := DecodeNotificationStream(buf)
	if err != nil {
		t.Fatalf("DecodeNotificationStream: %v", err)
	}
	sample := &got.Stamps[0].Samples[0]
	if len(sample.Data) == 0 {
		t.Fatal("expected non-empty sample data")
	}
	found := false
	for off := 0; off+len(sample.Data) <= len(buf); off++ {
		if &buf[off] == &sample.Data[0] {
			found = true
			break
		}
	}
	if !found {
		t.Error("sample.Data does not alias the decoded buffer")
	}
}

func TestNotificationStreamRejectsBadStreamLength(t *testing.T) {
	buf := make([]byte, 12)
	// declare streamLength far larger than available
	buf[0] = 0xFF
	if _, err := DecodeNotificationStream(buf); err == nil {
		t.Error("expected UnexpectedLengthError")
	}
}

func TestNotificationStreamRejectsTruncatedStamp(t *testing.T) {
	buf := make([]byte, 8+4) // declares a stamp but has no room for one
	// streamLength = 8 (consistent with the 12-byte body), but stampCount
	// claims 1 stamp and only 4 bytes follow instead of the 12 it needs
	buf[0], buf[1], buf[2], buf[3] = 8, 0, 0, 0
	buf[4], buf[5], buf[6], buf[7] = 1, 0, 0, 0
	if _, err := DecodeNotificationStream(buf); err == nil {
		t.Error("expected UnexpectedLengthError for truncated stamp")
	}
}

func TestNotificationStreamIterateOrder(t *testing.T) {
	s := buildStream()
	var handles []uint32
	s.Iterate(func(_ FileTime, sample *Sample) {
		handles = append(handles, sample.Handle)
	})
	want := []uint32{1, 2, 3}
	if len(handles) != len(want) {
		t.Fatalf("got %v, want %v", handles, want)
	}
	for i := range want {
		if handles[i] != want[i] {
			t.Errorf("handles[%d] = %d, want %d", i, handles[i], want[i])
		}
	}
}
