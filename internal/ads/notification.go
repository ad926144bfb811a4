package ads

import "encoding/binary"

// Sample is a single handle-tagged payload within a notification stamp.
// Data is a zero-copy view into the frame buffer the stream was decoded
// from; it is valid only as long as that buffer is not reused.
type Sample struct {
	Handle uint32
	Data   []byte
}

// Stamp groups the samples the server captured at a single timestamp.
type Stamp struct {
	Timestamp FileTime
	Samples   []Sample
}

// NotificationStream is a decoded DeviceNotification response body: a
// sequence of stamps, each carrying zero or more handle-tagged samples.
// All Sample.Data slices borrow from the buffer passed to
// DecodeNotificationStream; no copies are made during decode.
type NotificationStream struct {
	Stamps []Stamp
}

// DecodeNotificationStream decodes a DeviceNotification response body:
//
//	streamLength(4) stampCount(4)
//	  { timestamp(8) sampleCount(4) { handle(4) sampleSize(4) data(sampleSize) }... }...
//
// streamLength must equal len(body)-4 (it excludes itself). Each stamp
// must advance the cursor by exactly 12 + sum(8+sampleSize); truncated
// or over-long claims fail with UnexpectedLengthError.
func DecodeNotificationStream(body []byte) (NotificationStream, error) {
	var out NotificationStream
	if len(body) < 8 {
		return out, &UnexpectedLengthError{Expected: 8, Got: len(body)}
	}
	streamLength := binary.LittleEndian.Uint32(body[0:4])
	stampCount := binary.LittleEndian.Uint32(body[4:8])
	if int(streamLength) != len(body)-4 {
		return out, &UnexpectedLengthError{Expected: int(streamLength) + 4, Got: len(body)}
	}

	cursor := 8
	stamps := make([]Stamp, 0, stampCount)
	for i := uint32(0); i < stampCount; i++ {
		if len(body)-cursor < 12 {
			return out, &UnexpectedLengthError{Expected: cursor + 12, Got: len(body)}
		}
		timestamp := FileTime(binary.LittleEndian.Uint64(body[cursor : cursor+8]))
		sampleCount := binary.LittleEndian.Uint32(body[cursor+8 : cursor+12])
		cursor += 12

		samples := make([]Sample, 0, sampleCount)
		for j := uint32(0); j < sampleCount; j++ {
			if len(body)-cursor < 8 {
				return out, &UnexpectedLengthError{Expected: cursor + 8, Got: len(body)}
			}
			handle := binary.LittleEndian.Uint32(body[cursor : cursor+4])
			sampleSize := binary.LittleEndian.Uint32(body[cursor+4 : cursor+8])
			cursor += 8
			if uint32(len(body)-cursor) < sampleSize {
				return out, &UnexpectedLengthError{Expected: cursor + int(sampleSize), Got: len(body)}
			}
			samples = append(samples, Sample{Handle: handle, Data: body[cursor : cursor+int(sampleSize)]})
			cursor += int(sampleSize)
		}
		stamps = append(stamps, Stamp{Timestamp: timestamp, Samples: samples})
	}
	if cursor != len(body) {
		return out, &UnexpectedLengthError{Expected: cursor, Got: len(body)}
	}
	out.Stamps = stamps
	return out, nil
}

// MarshalBinary re-encodes the stream into its wire form. Used by tests
// and by servers constructing notification pushes.
func (s NotificationStream) MarshalBinary() ([]byte, error) {
	tail := 4 // stampCount
	for _, st := range s.Stamps {
		tail += 12
		for _, sm := range st.Samples {
			tail += 8 + len(sm.Data)
		}
	}
	buf := make([]byte, 4+tail)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(tail))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(s.Stamps)))
	cursor := 8
	for _, st := range s.Stamps {
		binary.LittleEndian.PutUint64(buf[cursor:cursor+8], uint64(st.Timestamp))
		binary.LittleEndian.PutUint32(buf[cursor+8:cursor+12], uint32(len(st.Samples)))
		cursor += 12
		for _, sm := range st.Samples {
			binary.LittleEndian.PutUint32(buf[cursor:cursor+4], sm.Handle)
			binary.LittleEndian.PutUint32(buf[cursor+4:cursor+8], uint32(len(sm.Data)))
			cursor += 8
			copy(buf[cursor:cursor+len(sm.Data)], sm.Data)
			cursor += len(sm.Data)
		}
	}
	return buf, nil
}

// Iterate calls fn for every (timestamp, sample) pair across all stamps,
// in declaration order: stamps first, then samples within each stamp.
func (s NotificationStream) Iterate(fn func(timestamp FileTime, sample *Sample)) {
	for i := range s.Stamps {
		st := &s.Stamps[i]
		for j := range st.Samples {
			fn(st.Timestamp, &st.Samples[j])
		}
	}
}
