package ams

import (
	"bytes"
	"testing"
)

func TestAddressRoundTrip(t *testing.T) {
	a := Address{NetID: NetID{192, 168, 0, 1, 1, 1}, Port: 851}

	buf, err := a.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(buf) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(buf))
	}

	got, err := DecodeAddress(buf)
	if err != nil {
		t.Fatalf("DecodeAddress: %v", err)
	}
	if got != a {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, a)
	}
}

func TestAddressTextRoundTrip(t *testing.T) {
	text := "192.168.0.1.1.1:851"
	a, err := ParseAddress(text)
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	if got := a.String(); got != text {
		t.Errorf("String() = %q, want %q", got, text)
	}
}

func TestParseAddressRejectsMissingSeparator(t *testing.T) {
	if _, err := ParseAddress("192.168.0.1.1.1"); err == nil {
		t.Error("expected error for missing ':' separator")
	}
}

func TestParseAddressRejectsBadPort(t *testing.T) {
	if _, err := ParseAddress("192.168.0.1.1.1:not-a-port"); err == nil {
		t.Error("expected error for non-numeric port")
	}
	if _, err := ParseAddress("192.168.0.1.1.1:99999"); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestDecodeAddressLengthCheck(t *testing.T) {
	if _, err := DecodeAddress([]byte{1, 2, 3}); err == nil {
		t.Error("expected UnexpectedLengthError")
	}
}

func TestAddressEncodeMatchesMarshalBinary(t *testing.T) {
	a := Address{NetID: NetID{1, 2, 3, 4, 5, 6}, Port: 30000}
	want, _ := a.MarshalBinary()

	got := make([]byte, 8)
	a.Encode(got)

	if !bytes.Equal(got, want) {
		t.Errorf("Encode = %v, want %v", got, want)
	}
}
