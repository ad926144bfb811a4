package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/mrpasztoradam/adscore/internal/ads"
	"github.com/mrpasztoradam/adscore/internal/ams"
)

// UnexpectedLengthError reports a payload whose length does not match
// what the handshake message requires.
type UnexpectedLengthError struct {
	Expected int
	Got      int
}

func (e *UnexpectedLengthError) Error() string {
	return fmt.Sprintf("frame: unexpected length: expected %d, got %d", e.Expected, e.Got)
}

// PortConnectRequest asks the router to assign (or confirm) a source
// port. DesiredPort of 0 requests a dynamically assigned port.
type PortConnectRequest struct {
	DesiredPort ams.Port
}

func (r PortConnectRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(r.DesiredPort))
	return buf, nil
}

// PortConnectResponse carries the address the router assigned to this
// connection. Some routers return only 6 bytes (NetId only, no port);
// DecodePortConnectResponse accepts both 8-byte and 6-byte forms.
type PortConnectResponse struct {
	Assigned ams.Address
}

func DecodePortConnectResponse(payload []byte) (PortConnectResponse, error) {
	switch len(payload) {
	case 8:
		addr, err := ams.DecodeAddress(payload)
		if err != nil {
			return PortConnectResponse{}, err
		}
		return PortConnectResponse{Assigned: addr}, nil
	case 6:
		netID, err := ams.NetIDFromSlice(payload)
		if err != nil {
			return PortConnectResponse{}, err
		}
		return PortConnectResponse{Assigned: ams.Address{NetID: netID}}, nil
	default:
		return PortConnectResponse{}, &UnexpectedLengthError{Expected: 8, Got: len(payload)}
	}
}

// PortCloseRequest asks the router to release a previously assigned
// source port. Typically unacknowledged.
type PortCloseRequest struct {
	Port ams.Port
}

func (r PortCloseRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(r.Port))
	return buf, nil
}

// RouterNotification carries the router's lifecycle state, pushed
// unsolicited with router command RouterNotification.
type RouterNotification struct {
	State ads.RouterState
}

func DecodeRouterNotification(payload []byte) (RouterNotification, error) {
	if len(payload) != 4 {
		return RouterNotification{}, &UnexpectedLengthError{Expected: 4, Got: len(payload)}
	}
	return RouterNotification{State: ads.RouterState(binary.LittleEndian.Uint32(payload))}, nil
}

func (n RouterNotification) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(n.State))
	return buf, nil
}

// GetLocalNetIDRequest carries an arbitrary 4-byte payload, typically
// all zero.
type GetLocalNetIDRequest struct {
	Reserved uint32
}

func (r GetLocalNetIDRequest) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, r.Reserved)
	return buf, nil
}

// GetLocalNetIDResponse carries the router's own NetId.
type GetLocalNetIDResponse struct {
	NetID ams.NetID
}

func DecodeGetLocalNetIDResponse(payload []byte) (GetLocalNetIDResponse, error) {
	netID, err := ams.NetIDFromSlice(payload)
	if err != nil {
		return GetLocalNetIDResponse{}, err
	}
	return GetLocalNetIDResponse{NetID: netID}, nil
}

func (r GetLocalNetIDResponse) MarshalBinary() ([]byte, error) {
	b := r.NetID.Bytes()
	return b[:], nil
}
