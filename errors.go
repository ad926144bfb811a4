package adscore

import (
	"errors"
	"fmt"

	"github.com/mrpasztoradam/adscore/internal/ads"
)

// TransportError wraps a failure from the underlying network
// connection: dial, read, or write errors surfaced by net.Conn.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("adscore: transport %s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedFrameError reports a frame or packet that failed a structural
// invariant: a bad length field, a truncated body, or a declared tail
// length that does not match the bytes present.
type MalformedFrameError struct {
	Err error
}

func (e *MalformedFrameError) Error() string {
	return fmt.Sprintf("adscore: malformed frame: %v", e.Err)
}

func (e *MalformedFrameError) Unwrap() error { return e.Err }

// ProtocolMismatchError reports a decoded packet whose command ID,
// direction flag, or router command does not match what the caller
// expected for the exchange in progress.
type ProtocolMismatchError struct {
	Expected string
	Got      string
}

func (e *ProtocolMismatchError) Error() string {
	return fmt.Sprintf("adscore: protocol mismatch: expected %s, got %s", e.Expected, e.Got)
}

// PrimitiveDecodeError wraps a failure decoding a primitive value (NetId
// text, ADS string encoding, a malformed fixed field) embedded in an
// otherwise well-formed packet.
type PrimitiveDecodeError struct {
	Err error
}

func (e *PrimitiveDecodeError) Error() string {
	return fmt.Sprintf("adscore: primitive decode: %v", e.Err)
}

func (e *PrimitiveDecodeError) Unwrap() error { return e.Err }

// AdsError reports a non-OK return code reported by the server in
// response to a request. ads.ReturnCode already implements error; this
// wrapper exists so callers can errors.As into a stable adscore-level
// type with the failing operation attached, rather than reaching into
// the internal ads package directly.
type AdsError struct {
	Operation string
	Code      ads.ReturnCode
}

func (e *AdsError) Error() string {
	return fmt.Sprintf("adscore: %s: %s", e.Operation, e.Code)
}

// TimeoutError reports that a request's deadline expired before a
// response arrived. The pending-request slot has already been removed;
// a response arriving after this point is dropped.
type TimeoutError struct {
	Operation string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("adscore: %s: timed out waiting for response", e.Operation)
}

// ConnectionClosedError reports that the session's connection was
// closed, surfaced to every pending request at teardown time. Live
// subscriptions do not receive it; their sample channels are closed.
type ConnectionClosedError struct{}

func (e *ConnectionClosedError) Error() string { return "adscore: connection closed" }

// UnexpectedResponseError reports a response frame that correlated to a
// pending request by invoke ID but carried a different ADS command than
// the one that was sent.
type UnexpectedResponseError struct {
	Expected ads.CommandID
	Got      ads.CommandID
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("adscore: unexpected response: expected command %s, got %s", e.Expected, e.Got)
}

// AsAdsError reports whether err is (or wraps) an AdsError, and if so
// returns it. Convenience wrapper around errors.As for callers that want
// to branch on the server-reported ReturnCode.
func AsAdsError(err error) (*AdsError, bool) {
	var target *AdsError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsTimeout reports whether err is (or wraps) a TimeoutError.
func IsTimeout(err error) bool {
	var target *TimeoutError
	return errors.As(err, &target)
}

// IsConnectionClosed reports whether err is (or wraps) a
// ConnectionClosedError.
func IsConnectionClosed(err error) bool {
	var target *ConnectionClosedError
	return errors.As(err, &target)
}
