package frame

import (
	"bytes"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	f := Frame{Command: RouterCommandAdsCommand, Payload: []byte{1, 2, 3, 4}}
	buf, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	got, err := ReadFrame(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if got.Command != f.Command || !bytes.Equal(got.Payload, f.Payload) {
		t.Errorf("got %+v, want %+v", got, f)
	}
}

func TestFrameRejectsOversizedPayloadOnWrite(t *testing.T) {
	f := Frame{Command: RouterCommandAdsCommand, Payload: make([]byte, MaxPayloadSize+1)}
	if _, err := f.MarshalBinary(); err == nil {
		t.Error("expected OversizedPayloadError")
	} else if _, ok := err.(*OversizedPayloadError); !ok {
		t.Errorf("expected *OversizedPayloadError, got %T", err)
	}
}

func TestReadFrameRejectsOversizedLengthBeforeAllocating(t *testing.T) {
	header := make([]byte, HeaderSize)
	header[2], header[3], header[4], header[5] = 0xFF, 0xFF, 0xFF, 0x00 // length = 0x00FFFFFF
	if _, err := ReadFrame(bytes.NewReader(header)); err == nil {
		t.Error("expected OversizedPayloadError")
	} else if _, ok := err.(*OversizedPayloadError); !ok {
		t.Errorf("expected *OversizedPayloadError, got %T", err)
	}
}

func TestReadFrameRejectsTruncatedPayload(t *testing.T) {
	full := Frame{Command: RouterCommandAdsCommand, Payload: []byte{1, 2, 3, 4}}
	buf, _ := full.MarshalBinary()
	truncated := buf[:len(buf)-1]
	if _, err := ReadFrame(bytes.NewReader(truncated)); err == nil {
		t.Error("expected a read error for truncated payload")
	}
}

func TestWriteFrameThenReadFrame(t *testing.T) {
	var b bytes.Buffer
	f := Frame{Command: RouterCommandPortConnect, Payload: []byte{0x00, 0x00}}
	if err := WriteFrame(&b, f); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	got, err := ReadFrame(&b)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if got.Command != f.Command || !bytes.Equal(got.Payload, f.Payload) {
		t.Errorf("got %+v, want %+v", got, f)
	}
}

func TestReadFrameIntoRoundTrip(t *testing.T) {
	var b bytes.Buffer
	f := Frame{Command: RouterCommandAdsCommand, Payload: []byte{1, 2, 3, 4, 5}}
	if err := WriteFrame(&b, f); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	buf := make([]byte, 32)
	command, n, err := ReadFrameInto(&b, buf)
	if err != nil {
		t.Fatalf("ReadFrameInto: %v", err)
	}
	if command != f.Command || !bytes.Equal(buf[:n], f.Payload) {
		t.Errorf("got command=%v payload=%v, want command=%v payload=%v", command, buf[:n], f.Command, f.Payload)
	}
}

func TestReadFrameIntoRejectsUndersizedBuffer(t *testing.T) {
	var b bytes.Buffer
	f := Frame{Command: RouterCommandAdsCommand, Payload: []byte{1, 2, 3, 4, 5}}
	if err := WriteFrame(&b, f); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	buf := make([]byte, 2)
	if _, _, err := ReadFrameInto(&b, buf); err == nil {
		t.Error("expected UndersizedBufferError")
	} else if _, ok := err.(*UndersizedBufferError); !ok {
		t.Errorf("expected *UndersizedBufferError, got %T", err)
	}
}

func TestReadFrameIntoRejectsOversizedLengthBeforeReadingPayload(t *testing.T) {
	header := make([]byte, HeaderSize)
	header[2], header[3], header[4], header[5] = 0xFF, 0xFF, 0xFF, 0x00 // length = 0x00FFFFFF
	buf := make([]byte, 16)
	if _, _, err := ReadFrameInto(bytes.NewReader(header), buf); err == nil {
		t.Error("expected OversizedPayloadError")
	} else if _, ok := err.(*OversizedPayloadError); !ok {
		t.Errorf("expected *OversizedPayloadError, got %T", err)
	}
}

func TestRouterCommandStringUnknown(t *testing.T) {
	c := RouterCommand(0x2222)
	if c.String() != "RouterCommand(0x2222)" {
		t.Errorf("String() = %q", c.String())
	}
}
