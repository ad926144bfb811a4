package ads

import (
	"encoding/binary"

	"github.com/mrpasztoradam/adscore/internal/ams"
)

// HeaderSize is the fixed size in bytes of the ADS header.
const HeaderSize = 32

// Header is the 32-byte ADS header that begins every ADS frame's
// payload: target address (8), source address (8), command ID (2),
// state flags (2), body length (4), return code (4), invoke ID (4).
type Header struct {
	Target     ams.Address
	Source     ams.Address
	Command    CommandID
	StateFlags StateFlags
	Length     uint32
	Result     ReturnCode
	InvokeID   uint32
}

// Encode writes the 32-byte wire form into buf, which must be exactly
// HeaderSize bytes.
func (h Header) Encode(buf []byte) error {
	if len(buf) != HeaderSize {
		return &UnexpectedLengthError{Expected: HeaderSize, Got: len(buf)}
	}
	h.Target.Encode(buf[0:8])
	h.Source.Encode(buf[8:16])
	binary.LittleEndian.PutUint16(buf[16:18], uint16(h.Command))
	binary.LittleEndian.PutUint16(buf[18:20], uint16(h.StateFlags))
	binary.LittleEndian.PutUint32(buf[20:24], h.Length)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(h.Result))
	binary.LittleEndian.PutUint32(buf[28:32], h.InvokeID)
	return nil
}

// MarshalBinary encodes a fresh 32-byte buffer.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	if err := h.Encode(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeHeader decodes a 32-byte buffer. Fails with UnexpectedLengthError
// unless len(buf) == HeaderSize.
func DecodeHeader(buf []byte) (Header, error) {
	var h Header
	if len(buf) != HeaderSize {
		return h, &UnexpectedLengthError{Expected: HeaderSize, Got: len(buf)}
	}
	target, err := ams.DecodeAddress(buf[0:8])
	if err != nil {
		return h, err
	}
	source, err := ams.DecodeAddress(buf[8:16])
	if err != nil {
		return h, err
	}
	h.Target = target
	h.Source = source
	h.Command = CommandID(binary.LittleEndian.Uint16(buf[16:18]))
	h.StateFlags = StateFlags(binary.LittleEndian.Uint16(buf[18:20]))
	h.Length = binary.LittleEndian.Uint32(buf[20:24])
	h.Result = ReturnCode(binary.LittleEndian.Uint32(buf[24:28]))
	h.InvokeID = binary.LittleEndian.Uint32(buf[28:32])
	return h, nil
}
