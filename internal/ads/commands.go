package ads

import (
	"encoding/binary"
	"fmt"
)

// DataLengthError reports that a decoded body declares a variable-length
// tail that does not match the bytes actually available.
type DataLengthError struct {
	Expected int
	Got      int
}

func (e *DataLengthError) Error() string {
	return fmt.Sprintf("ads: unexpected data length: declared %d, have %d", e.Expected, e.Got)
}

// --- Read ---

// ReadRequest is the 12-byte Read command body: group, offset, length.
type ReadRequest struct {
	IndexGroup  uint32
	IndexOffset uint32
	Length      uint32
}

func (r ReadRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint32(buf[0:4], r.IndexGroup)
	binary.LittleEndian.PutUint32(buf[4:8], r.IndexOffset)
	binary.LittleEndian.PutUint32(buf[8:12], r.Length)
	return buf, nil
}

// ReadResponseView is a zero-copy view over a decoded Read response
// body: Data borrows from the caller-supplied buffer.
type ReadResponseView struct {
	Result ReturnCode
	Length uint32
	Data   []byte
}

// DecodeReadResponseView decodes body in place without copying Data.
func DecodeReadResponseView(body []byte) (ReadResponseView, error) {
	var v ReadResponseView
	if len(body) < 8 {
		return v, &UnexpectedLengthError{Expected: 8, Got: len(body)}
	}
	v.Result = ReturnCode(binary.LittleEndian.Uint32(body[0:4]))
	v.Length = binary.LittleEndian.Uint32(body[4:8])
	rest := body[8:]
	if uint32(len(rest)) != v.Length {
		return v, &DataLengthError{Expected: int(v.Length), Got: len(rest)}
	}
	v.Data = rest
	return v, nil
}

// ReadResponse is the owning counterpart of ReadResponseView.
type ReadResponse struct {
	Result ReturnCode
	Length uint32
	Data   []byte
}

// ToOwned copies Data into a freshly allocated buffer.
func (v ReadResponseView) ToOwned() ReadResponse {
	data := make([]byte, len(v.Data))
	copy(data, v.Data)
	return ReadResponse{Result: v.Result, Length: v.Length, Data: data}
}

// MarshalBinary encodes the response body (used on the server side / in
// tests constructing canned responses).
func (r ReadResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8+len(r.Data))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(r.Result))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(r.Data)))
	copy(buf[8:], r.Data)
	return buf, nil
}

// --- Write ---

// WriteRequest is group(4), offset(4), len(4), data(len).
type WriteRequest struct {
	IndexGroup  uint32
	IndexOffset uint32
	Data        []byte
}

func (w WriteRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 12+len(w.Data))
	binary.LittleEndian.PutUint32(buf[0:4], w.IndexGroup)
	binary.LittleEndian.PutUint32(buf[4:8], w.IndexOffset)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(w.Data)))
	copy(buf[12:], w.Data)
	return buf, nil
}

// DecodeWriteRequest decodes a Write request body with a zero-copy view
// over Data.
func DecodeWriteRequest(body []byte) (WriteRequest, error) {
	var w WriteRequest
	if len(body) < 12 {
		return w, &UnexpectedLengthError{Expected: 12, Got: len(body)}
	}
	w.IndexGroup = binary.LittleEndian.Uint32(body[0:4])
	w.IndexOffset = binary.LittleEndian.Uint32(body[4:8])
	length := binary.LittleEndian.Uint32(body[8:12])
	rest := body[12:]
	if uint32(len(rest)) != length {
		return w, &DataLengthError{Expected: int(length), Got: len(rest)}
	}
	w.Data = rest
	return w, nil
}

// WriteResponse is the 4-byte result-only Write response body.
type WriteResponse struct {
	Result ReturnCode
}

func DecodeWriteResponse(body []byte) (WriteResponse, error) {
	if len(body) != 4 {
		return WriteResponse{}, &UnexpectedLengthError{Expected: 4, Got: len(body)}
	}
	return WriteResponse{Result: ReturnCode(binary.LittleEndian.Uint32(body))}, nil
}

func (w WriteResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(w.Result))
	return buf, nil
}

// --- ReadState ---

// ReadStateRequest has an empty body.
type ReadStateRequest struct{}

func (ReadStateRequest) MarshalBinary() ([]byte, error) { return []byte{}, nil }

// ReadStateResponse is returnCode(4), adsState(2), deviceState(2).
type ReadStateResponse struct {
	Result      ReturnCode
	ADSState    State
	DeviceState DeviceState
}

func DecodeReadStateResponse(body []byte) (ReadStateResponse, error) {
	if len(body) != 8 {
		return ReadStateResponse{}, &UnexpectedLengthError{Expected: 8, Got: len(body)}
	}
	return ReadStateResponse{
		Result:      ReturnCode(binary.LittleEndian.Uint32(body[0:4])),
		ADSState:    State(binary.LittleEndian.Uint16(body[4:6])),
		DeviceState: DeviceState(binary.LittleEndian.Uint16(body[6:8])),
	}, nil
}

func (r ReadStateResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(r.Result))
	binary.LittleEndian.PutUint16(buf[4:6], uint16(r.ADSState))
	binary.LittleEndian.PutUint16(buf[6:8], uint16(r.DeviceState))
	return buf, nil
}

// --- ReadDeviceInfo ---

// ReadDeviceInfoRequest has an empty body.
type ReadDeviceInfoRequest struct{}

func (ReadDeviceInfoRequest) MarshalBinary() ([]byte, error) { return []byte{}, nil }

// ReadDeviceInfoResponse is returnCode(4), major(1), minor(1), build(2),
// name(16) — fixed 24 bytes.
type ReadDeviceInfoResponse struct {
	Result ReturnCode
	Major  uint8
	Minor  uint8
	Build  uint16
	Name   String
}

func DecodeReadDeviceInfoResponse(body []byte) (ReadDeviceInfoResponse, error) {
	if len(body) != 24 {
		return ReadDeviceInfoResponse{}, &UnexpectedLengthError{Expected: 24, Got: len(body)}
	}
	name, err := DecodeString(body[8:24])
	if err != nil {
		return ReadDeviceInfoResponse{}, err
	}
	return ReadDeviceInfoResponse{
		Result: ReturnCode(binary.LittleEndian.Uint32(body[0:4])),
		Major:  body[4],
		Minor:  body[5],
		Build:  binary.LittleEndian.Uint16(body[6:8]),
		Name:   name,
	}, nil
}

func (r ReadDeviceInfoResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(r.Result))
	buf[4] = r.Major
	buf[5] = r.Minor
	binary.LittleEndian.PutUint16(buf[6:8], r.Build)
	if err := r.Name.Encode(buf[8:24]); err != nil {
		return nil, err
	}
	return buf, nil
}

// --- WriteControl ---

// WriteControlRequest is adsState(2), deviceState(2), len(4), data(len).
type WriteControlRequest struct {
	ADSState    State
	DeviceState DeviceState
	Data        []byte
}

func (w WriteControlRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8+len(w.Data))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(w.ADSState))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(w.DeviceState))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(w.Data)))
	copy(buf[8:], w.Data)
	return buf, nil
}

func DecodeWriteControlRequest(body []byte) (WriteControlRequest, error) {
	var w WriteControlRequest
	if len(body) < 8 {
		return w, &UnexpectedLengthError{Expected: 8, Got: len(body)}
	}
	w.ADSState = State(binary.LittleEndian.Uint16(body[0:2]))
	w.DeviceState = DeviceState(binary.LittleEndian.Uint16(body[2:4]))
	length := binary.LittleEndian.Uint32(body[4:8])
	rest := body[8:]
	if uint32(len(rest)) != length {
		return w, &DataLengthError{Expected: int(length), Got: len(rest)}
	}
	w.Data = rest
	return w, nil
}

// WriteControlResponse is the 4-byte result-only body.
type WriteControlResponse struct {
	Result ReturnCode
}

func DecodeWriteControlResponse(body []byte) (WriteControlResponse, error) {
	if len(body) != 4 {
		return WriteControlResponse{}, &UnexpectedLengthError{Expected: 4, Got: len(body)}
	}
	return WriteControlResponse{Result: ReturnCode(binary.LittleEndian.Uint32(body))}, nil
}

func (w WriteControlResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(w.Result))
	return buf, nil
}

// --- AddDeviceNotification ---

// AddDeviceNotificationRequest is the 40-byte AddDevNotification body:
// group(4), offset(4), length(4), transMode(4), maxDelay(4),
// cycleTime(4), reserved(16 zeros). MaxDelay/CycleTime are milliseconds.
type AddDeviceNotificationRequest struct {
	IndexGroup       uint32
	IndexOffset      uint32
	Length           uint32
	TransmissionMode TransmissionMode
	MaxDelayMillis   uint32
	CycleTimeMillis  uint32
}

func (r AddDeviceNotificationRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 40)
	binary.LittleEndian.PutUint32(buf[0:4], r.IndexGroup)
	binary.LittleEndian.PutUint32(buf[4:8], r.IndexOffset)
	binary.LittleEndian.PutUint32(buf[8:12], r.Length)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(r.TransmissionMode))
	binary.LittleEndian.PutUint32(buf[16:20], r.MaxDelayMillis)
	binary.LittleEndian.PutUint32(buf[20:24], r.CycleTimeMillis)
	// buf[24:40] stays zero (reserved)
	return buf, nil
}

func DecodeAddDeviceNotificationRequest(body []byte) (AddDeviceNotificationRequest, error) {
	var r AddDeviceNotificationRequest
	if len(body) != 40 {
		return r, &UnexpectedLengthError{Expected: 40, Got: len(body)}
	}
	r.IndexGroup = binary.LittleEndian.Uint32(body[0:4])
	r.IndexOffset = binary.LittleEndian.Uint32(body[4:8])
	r.Length = binary.LittleEndian.Uint32(body[8:12])
	r.TransmissionMode = TransmissionMode(binary.LittleEndian.Uint32(body[12:16]))
	r.MaxDelayMillis = binary.LittleEndian.Uint32(body[16:20])
	r.CycleTimeMillis = binary.LittleEndian.Uint32(body[20:24])
	return r, nil
}

// AddDeviceNotificationResponse is returnCode(4), handle(4).
type AddDeviceNotificationResponse struct {
	Result ReturnCode
	Handle uint32
}

func DecodeAddDeviceNotificationResponse(body []byte) (AddDeviceNotificationResponse, error) {
	if len(body) != 8 {
		return AddDeviceNotificationResponse{}, &UnexpectedLengthError{Expected: 8, Got: len(body)}
	}
	return AddDeviceNotificationResponse{
		Result: ReturnCode(binary.LittleEndian.Uint32(body[0:4])),
		Handle: binary.LittleEndian.Uint32(body[4:8]),
	}, nil
}

func (r AddDeviceNotificationResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(r.Result))
	binary.LittleEndian.PutUint32(buf[4:8], r.Handle)
	return buf, nil
}

// --- DeleteDeviceNotification ---

// DeleteDeviceNotificationRequest is the 4-byte handle-only body.
type DeleteDeviceNotificationRequest struct {
	Handle uint32
}

func (r DeleteDeviceNotificationRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, r.Handle)
	return buf, nil
}

func DecodeDeleteDeviceNotificationRequest(body []byte) (DeleteDeviceNotificationRequest, error) {
	if len(body) != 4 {
		return DeleteDeviceNotificationRequest{}, &UnexpectedLengthError{Expected: 4, Got: len(body)}
	}
	return DeleteDeviceNotificationRequest{Handle: binary.LittleEndian.Uint32(body)}, nil
}

// DeleteDeviceNotificationResponse is the 4-byte result-only body.
type DeleteDeviceNotificationResponse struct {
	Result ReturnCode
}

func DecodeDeleteDeviceNotificationResponse(body []byte) (DeleteDeviceNotificationResponse, error) {
	if len(body) != 4 {
		return DeleteDeviceNotificationResponse{}, &UnexpectedLengthError{Expected: 4, Got: len(body)}
	}
	return DeleteDeviceNotificationResponse{Result: ReturnCode(binary.LittleEndian.Uint32(body))}, nil
}

func (r DeleteDeviceNotificationResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(r.Result))
	return buf, nil
}

// --- ReadWrite ---

// ReadWriteRequest is group(4), offset(4), readLen(4), writeLen(4),
// writeData(writeLen).
type ReadWriteRequest struct {
	IndexGroup  uint32
	IndexOffset uint32
	ReadLength  uint32
	WriteData   []byte
}

func (r ReadWriteRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 16+len(r.WriteData))
	binary.LittleEndian.PutUint32(buf[0:4], r.IndexGroup)
	binary.LittleEndian.PutUint32(buf[4:8], r.IndexOffset)
	binary.LittleEndian.PutUint32(buf[8:12], r.ReadLength)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(len(r.WriteData)))
	copy(buf[16:], r.WriteData)
	return buf, nil
}

// ReadWriteResponseView is a zero-copy view over a decoded ReadWrite
// response body.
type ReadWriteResponseView struct {
	Result ReturnCode
	Length uint32
	Data   []byte
}

func DecodeReadWriteResponseView(body []byte) (ReadWriteResponseView, error) {
	var v ReadWriteResponseView
	if len(body) < 8 {
		return v, &UnexpectedLengthError{Expected: 8, Got: len(body)}
	}
	v.Result = ReturnCode(binary.LittleEndian.Uint32(body[0:4]))
	v.Length = binary.LittleEndian.Uint32(body[4:8])
	rest := body[8:]
	if uint32(len(rest)) != v.Length {
		return v, &DataLengthError{Expected: int(v.Length), Got: len(rest)}
	}
	v.Data = rest
	return v, nil
}

// ReadWriteResponse is the owning counterpart of ReadWriteResponseView.
type ReadWriteResponse struct {
	Result ReturnCode
	Length uint32
	Data   []byte
}

func (v ReadWriteResponseView) ToOwned() ReadWriteResponse {
	data := make([]byte, len(v.Data))
	copy(data, v.Data)
	return ReadWriteResponse{Result: v.Result, Length: v.Length, Data: data}
}

func (r ReadWriteResponse) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8+len(r.Data))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(r.Result))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(r.Data)))
	copy(buf[8:], r.Data)
	return buf, nil
}
