package ads

import (
	"encoding/binary"
	"time"
)

// FileTime is a Windows FILETIME: the number of 100-nanosecond ticks
// since 1601-01-01 00:00:00 UTC. Wire encoding is little-endian 8 bytes.
// Grounded on original_source/packages/tcads-core/src/ads/filetime.rs.
type FileTime uint64

// TicksToUnixEpoch is the number of 100ns ticks between 1601-01-01 and
// 1970-01-01 (the Unix epoch).
const TicksToUnixEpoch uint64 = 116_444_736_000_000_000

const ticksPerSecond = 10_000_000
const ticksPerNanosecond = 100

// Now returns the current time as a FileTime.
func Now() FileTime { return FromTime(time.Now()) }

// FileTimeFromBytes decodes an 8-byte little-endian array. Infallible.
func FileTimeFromBytes(b [8]byte) FileTime {
	return FileTime(binary.LittleEndian.Uint64(b[:]))
}

// FileTimeFromSlice decodes a variable-length slice, failing unless it
// is exactly 8 bytes.
func FileTimeFromSlice(b []byte) (FileTime, error) {
	if len(b) != 8 {
		return 0, &UnexpectedLengthError{Expected: 8, Got: len(b)}
	}
	return FileTime(binary.LittleEndian.Uint64(b)), nil
}

// Bytes returns the 8-byte little-endian wire encoding.
func (f FileTime) Bytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(f))
	return b
}

// Encode writes the 8-byte wire form into buf (must be at least 8 bytes).
func (f FileTime) Encode(buf []byte) {
	binary.LittleEndian.PutUint64(buf, uint64(f))
}

// ToTime converts to wall-clock time. Saturates at 1970-01-01 UTC for
// any FileTime before the Unix epoch.
func (f FileTime) ToTime() time.Time {
	ticks := uint64(f)
	if ticks < TicksToUnixEpoch {
		return time.Unix(0, 0).UTC()
	}
	unixTicks := ticks - TicksToUnixEpoch
	sec := int64(unixTicks / ticksPerSecond)
	nsec := int64((unixTicks % ticksPerSecond) * ticksPerNanosecond)
	return time.Unix(sec, nsec).UTC()
}

// FromTime converts a wall-clock time to FileTime. Saturates at
// TicksToUnixEpoch (1970-01-01, zero ticks since the Unix epoch) for any
// time before 1970-01-01.
func FromTime(t time.Time) FileTime {
	unixNano := t.UnixNano()
	if unixNano < 0 {
		return FileTime(TicksToUnixEpoch)
	}
	ticks := uint64(unixNano) / ticksPerNanosecond
	return FileTime(TicksToUnixEpoch + ticks)
}
