package ads

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// String is a fixed-capacity ADS string: a buffer of Capacity bytes
// encoding up to Capacity-1 Windows-1252 characters plus a trailing zero
// byte. Grounded on spec.md §3 Strings; Windows-1252 encode/decode is
// delegated to golang.org/x/text/encoding/charmap (the ecosystem's
// standard legacy-codepage codec — the teacher has no equivalent, its
// ReadDeviceInfoResponse.DeviceName does a bare `string(bytes)` with no
// encoding awareness at all).
type String struct {
	Capacity int
	Text     string
}

// EncodingError reports a character outside the target encoding's
// repertoire, distinct from a length Overflow.
type EncodingError struct {
	Rune rune
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("ads: character %q is not representable in Windows-1252", e.Rune)
}

// OverflowError reports that an encoded string does not fit the target
// buffer capacity.
type OverflowError struct {
	Expected int
	Got      int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("ads: string overflow: capacity %d, need %d", e.Expected, e.Got)
}

var win1252Encoder = charmap.Windows1252.NewEncoder()
var win1252Decoder = charmap.Windows1252.NewDecoder()

// NewString builds a String with the given buffer capacity from native
// (UTF-8 Go string) text. Fails with EncodingError if any character
// cannot be represented in Windows-1252, or OverflowError if the
// Windows-1252-encoded form (plus the trailing zero) does not fit.
func NewString(capacity int, text string) (String, error) {
	encoded, err := win1252Encoder.String(text)
	if err != nil {
		return String{}, firstUnrepresentableRune(text)
	}
	if len(encoded)+1 > capacity {
		return String{}, &OverflowError{Expected: capacity, Got: len(encoded) + 1}
	}
	return String{Capacity: capacity, Text: text}, nil
}

// Encode writes the fixed-capacity buffer (Windows-1252 bytes, zero
// padded, trailing zero terminator) into buf, which must be exactly
// s.Capacity bytes.
func (s String) Encode(buf []byte) error {
	if len(buf) != s.Capacity {
		return &UnexpectedLengthError{Expected: s.Capacity, Got: len(buf)}
	}
	encoded, err := win1252Encoder.Bytes([]byte(s.Text))
	if err != nil {
		return firstUnrepresentableRune(s.Text)
	}
	if len(encoded)+1 > s.Capacity {
		return &OverflowError{Expected: s.Capacity, Got: len(encoded) + 1}
	}
	for i := range buf {
		buf[i] = 0
	}
	copy(buf, encoded)
	return nil
}

// DecodeString decodes a fixed-capacity buffer: bytes up to the first
// zero are the payload, Windows-1252 decoded to a native Go string.
// Capacity is the full buffer length.
func DecodeString(buf []byte) (String, error) {
	n := len(buf)
	for i, b := range buf {
		if b == 0 {
			n = i
			break
		}
	}
	text, err := win1252Decoder.String(string(buf[:n]))
	if err != nil {
		return String{}, &EncodingError{}
	}
	return String{Capacity: len(buf), Text: text}, nil
}

// firstUnrepresentableRune scans text and returns an *EncodingError
// naming the first rune that Windows-1252 cannot encode.
func firstUnrepresentableRune(text string) error {
	for _, r := range text {
		if _, err := win1252Encoder.String(string(r)); err != nil {
			return &EncodingError{Rune: r}
		}
	}
	return &EncodingError{}
}
