package ams

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Port is a 16-bit AMS port identifying a service within a NetId, e.g.
// 851 for the first PLC runtime.
type Port uint16

// Common AMS port numbers used by the TwinCAT runtime.
const (
	PortRouter        Port = 1
	PortLogger        Port = 100
	PortEventLogger   Port = 110
	PortPLCRuntime1   Port = 851
	PortPLCRuntime2   Port = 852
	PortPLCRuntime3   Port = 853
	PortPLCRuntime4   Port = 854
	PortSystemService Port = 10000
)

// Address is an (AMS NetId, Port) pair: 8 bytes on the wire, NetId bytes
// followed by the little-endian port.
type Address struct {
	NetID NetID
	Port  Port
}

// String returns "<netid>:<port>".
func (a Address) String() string {
	return fmt.Sprintf("%s:%d", a.NetID, a.Port)
}

// ParseAddress parses "<netid>:<port>". Fails unless there is exactly
// one ':' separator and the port parses as a u16.
func ParseAddress(s string) (Address, error) {
	var a Address
	idx := strings.LastIndexByte(s, ':')
	if idx < 0 {
		return a, fmt.Errorf("ams: address %q: missing ':' separator", s)
	}
	netPart, portPart := s[:idx], s[idx+1:]
	id, err := ParseNetID(netPart)
	if err != nil {
		return a, err
	}
	port, err := strconv.ParseUint(portPart, 10, 16)
	if err != nil {
		return a, fmt.Errorf("ams: address %q: port %q is not a u16: %w", s, portPart, err)
	}
	a.NetID = id
	a.Port = Port(port)
	return a, nil
}

// MarshalBinary encodes the 8-byte wire form (6-byte NetId + 2-byte
// little-endian port).
func (a Address) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	a.Encode(buf)
	return buf, nil
}

// Encode writes the 8-byte wire form into buf, which must be at least 8
// bytes long. It never allocates.
func (a Address) Encode(buf []byte) {
	_ = buf[7]
	copy(buf[0:6], a.NetID[:])
	binary.LittleEndian.PutUint16(buf[6:8], uint16(a.Port))
}

// DecodeAddress decodes an 8-byte wire form. Fails with
// UnexpectedLengthError unless len(b) == 8.
func DecodeAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != 8 {
		return a, &UnexpectedLengthError{Expected: 8, Got: len(b)}
	}
	copy(a.NetID[:], b[0:6])
	a.Port = Port(binary.LittleEndian.Uint16(b[6:8]))
	return a, nil
}
