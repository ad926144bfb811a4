// Package frame implements the AMS/TCP outer frame: a 6-byte header (a
// router command plus a payload length) wrapping a variable-length
// payload. When the router command is AdsCommand the payload is an ADS
// packet (see package ads); other router commands carry handshake and
// notification payloads handled in this package.
package frame

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// RouterCommand identifies the purpose of an AMS/TCP frame. Open enum:
// unrecognized codes keep their raw value for round-tripping and String
// renders them as "RouterCommand(0x....)".
type RouterCommand uint16

const (
	RouterCommandAdsCommand         RouterCommand = 0x0000
	RouterCommandPortClose          RouterCommand = 0x0001
	RouterCommandPortConnect        RouterCommand = 0x1000
	RouterCommandRouterNotification RouterCommand = 0x1001
	RouterCommandGetLocalNetID      RouterCommand = 0x1002
)

func (c RouterCommand) String() string {
	switch c {
	case RouterCommandAdsCommand:
		return "AdsCommand"
	case RouterCommandPortClose:
		return "PortClose"
	case RouterCommandPortConnect:
		return "PortConnect"
	case RouterCommandRouterNotification:
		return "RouterNotification"
	case RouterCommandGetLocalNetID:
		return "GetLocalNetId"
	default:
		return fmt.Sprintf("RouterCommand(0x%04X)", uint16(c))
	}
}

// HeaderSize is the fixed size of the AMS/TCP outer header.
const HeaderSize = 6

// MaxPayloadSize is the largest payload length a frame may advertise.
// Enforced before allocating a receive buffer so an attacker cannot
// force an oversized allocation by lying about the length.
const MaxPayloadSize = 65529

// OversizedPayloadError reports a frame whose advertised payload length
// exceeds MaxPayloadSize.
type OversizedPayloadError struct {
	Got int
}

func (e *OversizedPayloadError) Error() string {
	return fmt.Sprintf("frame: payload length %d exceeds maximum %d", e.Got, MaxPayloadSize)
}

// Frame is one AMS/TCP unit: a router command and its payload.
type Frame struct {
	Command RouterCommand
	Payload []byte
}

// MarshalBinary encodes the frame's 6-byte header followed by Payload.
func (f Frame) MarshalBinary() ([]byte, error) {
	if len(f.Payload) > MaxPayloadSize {
		return nil, &OversizedPayloadError{Got: len(f.Payload)}
	}
	buf := make([]byte, HeaderSize+len(f.Payload))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(f.Command))
	binary.LittleEndian.PutUint32(buf[2:6], uint32(len(f.Payload)))
	copy(buf[6:], f.Payload)
	return buf, nil
}

// WriteFrame encodes and writes a single frame to w. The header and
// payload are written through a bufio.Writer sized to hold both and
// flushed once the frame is complete, so a frame never reaches the
// wire as two separate writes with a window for a partial frame to sit
// in a kernel buffer. Callers needing to serialize concurrent writers
// must hold their own lock around the call.
func WriteFrame(w io.Writer, f Frame) error {
	if len(f.Payload) > MaxPayloadSize {
		return &OversizedPayloadError{Got: len(f.Payload)}
	}
	bw := bufio.NewWriterSize(w, HeaderSize+len(f.Payload))
	var header [HeaderSize]byte
	binary.LittleEndian.PutUint16(header[0:2], uint16(f.Command))
	binary.LittleEndian.PutUint32(header[2:6], uint32(len(f.Payload)))
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("frame: write header: %w", err)
	}
	if _, err := bw.Write(f.Payload); err != nil {
		return fmt.Errorf("frame: write payload: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("frame: flush: %w", err)
	}
	return nil
}

// ReadFrame reads and decodes one frame from r: 6 header bytes, then
// the advertised payload. Rejects frames whose advertised length
// exceeds MaxPayloadSize before allocating the payload buffer.
func ReadFrame(r io.Reader) (Frame, error) {
	var f Frame
	headerBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return f, fmt.Errorf("frame: read header: %w", err)
	}
	f.Command = RouterCommand(binary.LittleEndian.Uint16(headerBuf[0:2]))
	length := binary.LittleEndian.Uint32(headerBuf[2:6])
	if length > MaxPayloadSize {
		return f, &OversizedPayloadError{Got: int(length)}
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return f, fmt.Errorf("frame: read payload: %w", err)
	}
	f.Payload = payload
	return f, nil
}

// UndersizedBufferError reports that ReadFrameInto's caller-supplied
// buffer was too small to hold the advertised payload.
type UndersizedBufferError struct {
	Need int
	Got  int
}

func (e *UndersizedBufferError) Error() string {
	return fmt.Sprintf("frame: buffer too small: need %d bytes, got %d", e.Need, e.Got)
}

// ReadFrameInto reads and decodes one frame from r into the
// caller-supplied buf, avoiding the per-call allocation ReadFrame makes.
// It fails with *UndersizedBufferError before reading the payload if
// buf is smaller than the advertised length, and with
// *OversizedPayloadError if the advertised length exceeds
// MaxPayloadSize. On success it returns the frame's router command and
// the number of payload bytes written into buf[:n].
func ReadFrameInto(r io.Reader, buf []byte) (RouterCommand, int, error) {
	headerBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return 0, 0, fmt.Errorf("frame: read header: %w", err)
	}
	command := RouterCommand(binary.LittleEndian.Uint16(headerBuf[0:2]))
	length := binary.LittleEndian.Uint32(headerBuf[2:6])
	if length > MaxPayloadSize {
		return command, 0, &OversizedPayloadError{Got: int(length)}
	}
	if int(length) > len(buf) {
		return command, 0, &UndersizedBufferError{Need: int(length), Got: len(buf)}
	}
	if _, err := io.ReadFull(r, buf[:length]); err != nil {
		return command, 0, fmt.Errorf("frame: read payload: %w", err)
	}
	return command, int(length), nil
}
