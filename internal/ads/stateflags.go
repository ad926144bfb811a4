package ads

// StateFlags is the 16-bit bitfield carried in every ADS header. It
// encodes the request/response direction plus a handful of protocol
// modifiers. Decoders must only check the bits they care about; unknown
// bits are preserved verbatim on round-trip (the bitfield is never
// masked on decode).
type StateFlags uint16

const (
	FlagResponse      StateFlags = 0x0001 // 0 = request, 1 = response
	FlagNoReturn      StateFlags = 0x0002 // fire-and-forget
	FlagADSCommand    StateFlags = 0x0004 // set for application ADS traffic
	FlagSystemCommand StateFlags = 0x0008 // router/system-level
	FlagHighPriority  StateFlags = 0x0010
	FlagTimestamp     StateFlags = 0x0020 // timestamp appended
	FlagUDP           StateFlags = 0x0040 // else TCP
	FlagInitCommand   StateFlags = 0x0080
	FlagBroadcast     StateFlags = 0x8000
)

// Canonical presets for the four (transport x direction) combinations.
const (
	TCPRequest  StateFlags = FlagADSCommand
	TCPResponse StateFlags = FlagADSCommand | FlagResponse
	UDPRequest  StateFlags = FlagADSCommand | FlagUDP
	UDPResponse StateFlags = FlagADSCommand | FlagUDP | FlagResponse
)

// IsRequest reports whether the Response bit is clear.
func (f StateFlags) IsRequest() bool { return f&FlagResponse == 0 }

// IsResponse reports whether the Response bit is set.
func (f StateFlags) IsResponse() bool { return f&FlagResponse != 0 }

// Has reports whether every bit in mask is set.
func (f StateFlags) Has(mask StateFlags) bool { return f&mask == mask }

// WithResponse returns f with the Response bit set to v.
func (f StateFlags) WithResponse(v bool) StateFlags {
	if v {
		return f | FlagResponse
	}
	return f &^ FlagResponse
}
