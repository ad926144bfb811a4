package ads

import (
	"bytes"
	"testing"
)

func TestReadRequestResponseRoundTrip(t *testing.T) {
	req := ReadRequest{IndexGroup: IndexGroupPLCMemory, IndexOffset: 16, Length: 4}
	buf, err := req.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(buf) != 12 {
		t.Fatalf("len(buf) = %d, want 12", len(buf))
	}

	resp := ReadResponse{Result: Ok, Data: []byte{1, 2, 3, 4}}
	respBuf, err := resp.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary response: %v", err)
	}

	view, err := DecodeReadResponseView(respBuf)
	if err != nil {
		t.Fatalf("DecodeReadResponseView: %v", err)
	}
	if !bytes.Equal(view.Data, resp.Data) {
		t.Errorf("Data = %v, want %v", view.Data, resp.Data)
	}
	// Zero-copy: the view must alias respBuf, not copy it.
	if len(view.Data) > 0 && &view.Data[0] != &respBuf[8] {
		t.Error("ReadResponseView.Data does not alias the source buffer")
	}

	owned := view.ToOwned()
	respBuf[8] = 0xFF
	if owned.Data[0] == 0xFF {
		t.Error("ToOwned() did not copy Data")
	}
}

func TestReadResponseViewRejectsBadDataLength(t *testing.T) {
	buf := make([]byte, 12)
	// declare length 8 but only supply 4 trailing bytes
	buf[4] = 8
	if _, err := DecodeReadResponseView(buf); err == nil {
		t.Error("expected DataLengthError")
	} else if _, ok := err.(*DataLengthError); !ok {
		t.Errorf("expected *DataLengthError, got %T", err)
	}
}

func TestWriteRequestRoundTrip(t *testing.T) {
	w := WriteRequest{IndexGroup: 1, IndexOffset: 2, Data: []byte{9, 8, 7}}
	buf, err := w.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	decoded, err := DecodeWriteRequest(buf)
	if err != nil {
		t.Fatalf("DecodeWriteRequest: %v", err)
	}
	if decoded.IndexGroup != w.IndexGroup || decoded.IndexOffset != w.IndexOffset {
		t.Errorf("decoded = %+v, want %+v", decoded, w)
	}
	if !bytes.Equal(decoded.Data, w.Data) {
		t.Errorf("Data = %v, want %v", decoded.Data, w.Data)
	}
}

func TestReadStateResponseRoundTrip(t *testing.T) {
	// Matches the wire bytes from scenario 2: [00 00 00 00 05 00 00 00]
	buf := []byte{0, 0, 0, 0, 5, 0, 0, 0}
	resp, err := DecodeReadStateResponse(buf)
	if err != nil {
		t.Fatalf("DecodeReadStateResponse: %v", err)
	}
	if resp.Result != Ok || resp.ADSState != StateRun || resp.DeviceState != 0 {
		t.Errorf("resp = %+v, want (Ok, Run, 0)", resp)
	}
	reencoded, err := resp.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if !bytes.Equal(reencoded, buf) {
		t.Errorf("re-encoded = %v, want %v", reencoded, buf)
	}
}

func TestReadDeviceInfoResponseRoundTrip(t *testing.T) {
	name, err := NewString(16, "TwinCAT System")
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	resp := ReadDeviceInfoResponse{Result: Ok, Major: 3, Minor: 1, Build: 4024, Name: name}
	buf, err := resp.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(buf) != 24 {
		t.Fatalf("len(buf) = %d, want 24", len(buf))
	}
	decoded, err := DecodeReadDeviceInfoResponse(buf)
	if err != nil {
		t.Fatalf("DecodeReadDeviceInfoResponse: %v", err)
	}
	if decoded.Major != 3 || decoded.Minor != 1 || decoded.Build != 4024 || decoded.Name.Text != "TwinCAT System" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestAddDeviceNotificationRoundTrip(t *testing.T) {
	req := AddDeviceNotificationRequest{
		IndexGroup: IndexGroupPLCMemory, IndexOffset: 0, Length: 2,
		TransmissionMode: TransModeServerOnChange, MaxDelayMillis: 0, CycleTimeMillis: 100,
	}
	buf, err := req.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(buf) != 40 {
		t.Fatalf("len(buf) = %d, want 40", len(buf))
	}
	decoded, err := DecodeAddDeviceNotificationRequest(buf)
	if err != nil {
		t.Fatalf("DecodeAddDeviceNotificationRequest: %v", err)
	}
	if decoded != req {
		t.Errorf("decoded = %+v, want %+v", decoded, req)
	}

	resp := AddDeviceNotificationResponse{Result: Ok, Handle: 42}
	respBuf, err := resp.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary response: %v", err)
	}
	decodedResp, err := DecodeAddDeviceNotificationResponse(respBuf)
	if err != nil {
		t.Fatalf("DecodeAddDeviceNotificationResponse: %v", err)
	}
	if decodedResp != resp {
		t.Errorf("decodedResp = %+v, want %+v", decodedResp, resp)
	}
}

func TestDeleteDeviceNotificationRoundTrip(t *testing.T) {
	req := DeleteDeviceNotificationRequest{Handle: 7}
	buf, err := req.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	decoded, err := DecodeDeleteDeviceNotificationRequest(buf)
	if err != nil {
		t.Fatalf("DecodeDeleteDeviceNotificationRequest: %v", err)
	}
	if decoded != req {
		t.Errorf("decoded = %+v, want %+v", decoded, req)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	req := ReadWriteRequest{IndexGroup: 1, IndexOffset: 2, ReadLength: 4, WriteData: []byte{1, 2}}
	buf, err := req.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(buf) != 18 {
		t.Fatalf("len(buf) = %d, want 18", len(buf))
	}

	resp := ReadWriteResponse{Result: Ok, Data: []byte{5, 6, 7, 8}}
	respBuf, err := resp.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary response: %v", err)
	}
	view, err := DecodeReadWriteResponseView(respBuf)
	if err != nil {
		t.Fatalf("DecodeReadWriteResponseView: %v", err)
	}
	owned := view.ToOwned()
	if !bytes.Equal(owned.Data, resp.Data) {
		t.Errorf("Data = %v, want %v", owned.Data, resp.Data)
	}
}

func TestWriteResponseFixedLength(t *testing.T) {
	if _, err := DecodeWriteResponse([]byte{1, 2, 3}); err == nil {
		t.Error("expected UnexpectedLengthError")
	}
}
