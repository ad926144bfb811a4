// Package ams implements the AMS addressing primitives (NetId, Port,
// Address) that identify peers on an ADS network. These are the leaf
// primitive-codec layer: bit-exact conversion between typed values and
// their little-endian/text encodings, with no I/O of their own.
package ams

import (
	"fmt"
	"strconv"
	"strings"
)

// NetID is a 6-byte opaque AMS routing identifier. It carries no
// ordering semantics beyond lexicographic byte comparison and is not an
// IP address, even though it is conventionally derived from one.
type NetID [6]byte

// String returns the dot-separated decimal-octet textual form, e.g.
// "192.168.1.1.1.1".
func (n NetID) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d.%d", n[0], n[1], n[2], n[3], n[4], n[5])
}

// ParseNetID parses the dot-separated textual form into a NetID. It
// fails unless there are exactly six components, each parsing as a u8.
func ParseNetID(s string) (NetID, error) {
	var id NetID
	parts := strings.Split(s, ".")
	if len(parts) != 6 {
		return id, fmt.Errorf("ams: netid %q: expected 6 octets, got %d", s, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return id, fmt.Errorf("ams: netid %q: octet %d (%q) is not a u8: %w", s, i, p, err)
		}
		id[i] = byte(v)
	}
	return id, nil
}

// Bytes returns the 6-byte wire encoding verbatim.
func (n NetID) Bytes() [6]byte { return n }

// NetIDFromBytes builds a NetID from a 6-byte array. Infallible: the
// array size is fixed at compile time.
func NetIDFromBytes(b [6]byte) NetID { return NetID(b) }

// NetIDFromSlice builds a NetID from a variable-length slice, failing if
// it is not exactly 6 bytes.
func NetIDFromSlice(b []byte) (NetID, error) {
	var id NetID
	if len(b) != 6 {
		return id, &UnexpectedLengthError{Expected: 6, Got: len(b)}
	}
	copy(id[:], b)
	return id, nil
}

// UnexpectedLengthError reports a fixed-size field decoded from a slice
// of the wrong length.
type UnexpectedLengthError struct {
	Expected int
	Got      int
}

func (e *UnexpectedLengthError) Error() string {
	return fmt.Sprintf("ams: unexpected length: expected %d bytes, got %d", e.Expected, e.Got)
}
