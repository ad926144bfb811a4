// Package session owns one connection to an AMS router: it performs the
// port-connect handshake, assigns invoke IDs, correlates responses to
// pending requests, and fans out server-pushed notifications. It is
// the primary public surface of this module — the teacher's ergonomic
// Client facade (symbol lookups, typed struct marshaling) sits above
// this layer and is out of scope here.
package session

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mrpasztoradam/adscore"
	"github.com/mrpasztoradam/adscore/internal/ads"
	"github.com/mrpasztoradam/adscore/internal/ams"
	"github.com/mrpasztoradam/adscore/internal/frame"
	"github.com/mrpasztoradam/adscore/internal/notify"
)

// Event is a session-level occurrence delivered on Session.Events: a
// router notification, surfaced without forcing callers to decode
// frame.RouterNotification themselves.
type Event struct {
	RouterState ads.RouterState
}

type pendingSlot struct {
	expected ads.CommandID
	deliver  chan pendingResult
}

type pendingResult struct {
	header ads.Header
	body   []byte
	err    error
}

// Session is one live connection to an AMS router.
type Session struct {
	opts   *Options
	conn   net.Conn
	target ams.Address
	source ams.Address

	invokeID atomic.Uint32

	pendingMu sync.Mutex
	pending   map[uint32]*pendingSlot

	writeMu sync.Mutex

	registry *notify.Registry

	events chan Event
	errors chan error

	group  *errgroup.Group
	cancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// Connect dials the transport address, optionally performs the
// PortConnect handshake (when no static source address was supplied via
// WithSource), and starts the reader task.
func Connect(ctx context.Context, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.transportAddress == "" {
		return nil, fmt.Errorf("adscore: transport address is required")
	}

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", o.transportAddress)
	if err != nil {
		return nil, &adscore.TransportError{Operation: "dial", Err: err}
	}
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.SetNoDelay(true); err != nil {
			conn.Close()
			return nil, &adscore.TransportError{Operation: "set nodelay", Err: err}
		}
	}

	groupCtx, cancel := context.WithCancel(context.Background())
	group, _ := errgroup.WithContext(groupCtx)

	s := &Session{
		opts:     o,
		conn:     conn,
		target:   o.target,
		source:   o.source,
		pending:  make(map[uint32]*pendingSlot),
		registry: notify.NewRegistry(),
		events:   make(chan Event, 16),
		errors:   make(chan error, 16),
		group:    group,
		cancel:   cancel,
	}

	if !o.hasSource {
		assigned, err := s.portConnect(ctx)
		if err != nil {
			conn.Close()
			cancel()
			return nil, err
		}
		s.source = assigned
		o.logger.Debug("port connect handshake complete", "source", assigned.String())
	}

	o.logger.Info("session connected", "transport", o.transportAddress, "target", s.target.String())
	group.Go(func() error {
		s.readLoop()
		return nil
	})

	return s, nil
}

// portConnect performs the router handshake, requesting a dynamically
// assigned source port, and returns the assigned address.
func (s *Session) portConnect(ctx context.Context) (ams.Address, error) {
	req := frame.PortConnectRequest{DesiredPort: 0}
	payload, err := req.MarshalBinary()
	if err != nil {
		return ams.Address{}, err
	}
	if err := s.writeFrame(frame.Frame{Command: frame.RouterCommandPortConnect, Payload: payload}); err != nil {
		return ams.Address{}, err
	}

	deadline := time.Now().Add(s.opts.requestTimeout)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := s.conn.SetReadDeadline(deadline); err != nil {
		return ams.Address{}, &adscore.TransportError{Operation: "set read deadline", Err: err}
	}
	defer s.conn.SetReadDeadline(time.Time{})

	f, err := frame.ReadFrame(s.conn)
	if err != nil {
		return ams.Address{}, &adscore.TransportError{Operation: "read handshake response", Err: err}
	}
	if f.Command != frame.RouterCommandPortConnect {
		return ams.Address{}, &adscore.ProtocolMismatchError{Expected: frame.RouterCommandPortConnect.String(), Got: f.Command.String()}
	}
	resp, err := frame.DecodePortConnectResponse(f.Payload)
	if err != nil {
		return ams.Address{}, &adscore.MalformedFrameError{Err: err}
	}
	return resp.Assigned, nil
}

// writeFrame serializes concurrent writers: frames written by one
// SendRequest call reach the wire contiguously and in issue order.
func (s *Session) writeFrame(f frame.Frame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := frame.WriteFrame(s.conn, f); err != nil {
		return &adscore.TransportError{Operation: "write", Err: err}
	}
	return nil
}

// nextInvokeID returns a fresh monotonic invoke ID. Uniqueness is
// guaranteed only across simultaneously outstanding requests; wrapping
// is allowed and expected over a long-lived session.
func (s *Session) nextInvokeID() uint32 {
	return s.invokeID.Add(1)
}

// SendRequest writes command/body as an ADS request addressed at the
// session's target, waits for the matching response (correlated by
// invoke ID), and returns the decoded response header and body.
func (s *Session) SendRequest(ctx context.Context, command ads.CommandID, body []byte) (ads.Header, []byte, error) {
	invokeID := s.nextInvokeID()
	header := ads.Header{
		Target:     s.target,
		Source:     s.source,
		Command:    command,
		StateFlags: ads.TCPRequest,
		Length:     uint32(len(body)),
		InvokeID:   invokeID,
	}
	headerBuf, err := header.MarshalBinary()
	if err != nil {
		return ads.Header{}, nil, err
	}
	payload := append(headerBuf, body...)

	slot := &pendingSlot{expected: command, deliver: make(chan pendingResult, 1)}
	s.pendingMu.Lock()
	s.pending[invokeID] = slot
	s.pendingMu.Unlock()
	defer func() {
		s.pendingMu.Lock()
		delete(s.pending, invokeID)
		s.pendingMu.Unlock()
	}()

	if err := s.writeFrame(frame.Frame{Command: frame.RouterCommandAdsCommand, Payload: payload}); err != nil {
		return ads.Header{}, nil, err
	}

	adscore.LoggerFromContext(ctx, s.opts.logger).Debug("request sent", "command", command.String(), "invokeID", invokeID)

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.requestTimeout)
		defer cancel()
	}

	select {
	case result := <-slot.deliver:
		if result.err != nil {
			return ads.Header{}, nil, result.err
		}
		if result.header.Command != command {
			return ads.Header{}, nil, &adscore.UnexpectedResponseError{Expected: command, Got: result.header.Command}
		}
		return result.header, result.body, nil
	case <-ctx.Done():
		return ads.Header{}, nil, &adscore.TimeoutError{Operation: command.String()}
	}
}

// Subscribe issues an AddDeviceNotification request and registers a
// sink for the resulting handle. The returned channel delivers samples
// until Unsubscribe is called or the session closes.
func (s *Session) Subscribe(ctx context.Context, req ads.AddDeviceNotificationRequest) (uint32, <-chan notify.Sample, error) {
	reqBody, err := req.MarshalBinary()
	if err != nil {
		return 0, nil, err
	}
	_, respBody, err := s.SendRequest(ctx, ads.CmdAddDeviceNotification, reqBody)
	if err != nil {
		return 0, nil, err
	}
	resp, err := ads.DecodeAddDeviceNotificationResponse(respBody)
	if err != nil {
		return 0, nil, &adscore.MalformedFrameError{Err: err}
	}
	if resp.Result != ads.Ok {
		return 0, nil, &adscore.AdsError{Operation: "AddDeviceNotification", Code: resp.Result}
	}

	sink := notify.NewChanSink(s.opts.sinkCapacity)
	if err := s.registry.Register(resp.Handle, sink); err != nil {
		return 0, nil, err
	}
	s.opts.logger.Debug("subscribed", "handle", resp.Handle, "indexGroup", req.IndexGroup, "indexOffset", req.IndexOffset)
	return resp.Handle, sink.C, nil
}

// Unsubscribe issues a DeleteDeviceNotification request and removes the
// handle's sink from the registry.
func (s *Session) Unsubscribe(ctx context.Context, handle uint32) error {
	req := ads.DeleteDeviceNotificationRequest{Handle: handle}
	reqBody, err := req.MarshalBinary()
	if err != nil {
		return err
	}
	ctx = adscore.ContextWithLogFields(ctx, "handle", handle)
	_, respBody, err := s.SendRequest(ctx, ads.CmdDelDeviceNotification, reqBody)
	if err != nil {
		return err
	}
	resp, err := ads.DecodeDeleteDeviceNotificationResponse(respBody)
	if err != nil {
		return &adscore.MalformedFrameError{Err: err}
	}
	s.registry.Unregister(handle)
	s.opts.logger.Debug("unsubscribed", "handle", handle)
	if resp.Result != ads.Ok {
		return &adscore.AdsError{Operation: "DeleteDeviceNotification", Code: resp.Result}
	}
	return nil
}

// Events delivers router-state notifications pushed by the router.
func (s *Session) Events() <-chan Event { return s.events }

// Errors delivers non-fatal classification failures observed by the
// reader task (unknown router commands, malformed frames), which do not
// terminate the session, and also the error that ends the session when
// the reader stops or Close runs.
func (s *Session) Errors() <-chan error { return s.errors }

// readLoop is the session's single reader task: it classifies every
// incoming frame and either dispatches a notification, resolves a
// pending request, or surfaces an error, without ever stalling on a
// slow consumer.
func (s *Session) readLoop() {
	for {
		f, err := frame.ReadFrame(s.conn)
		if err != nil {
			s.opts.logger.Debug("read loop exiting", "error", err)
			s.terminate(&adscore.TransportError{Operation: "read", Err: err})
			return
		}

		switch f.Command {
		case frame.RouterCommandRouterNotification:
			notif, err := frame.DecodeRouterNotification(f.Payload)
			if err != nil {
				s.surfaceError(&adscore.MalformedFrameError{Err: err})
				continue
			}
			s.opts.logger.Debug("router notification received", "state", notif.State.String())
			select {
			case s.events <- Event{RouterState: notif.State}:
			default:
			}
		case frame.RouterCommandAdsCommand:
			s.handleAdsFrame(f.Payload)
		default:
			s.surfaceError(&adscore.ProtocolMismatchError{Expected: "AdsCommand or RouterNotification", Got: f.Command.String()})
		}
	}
}

func (s *Session) handleAdsFrame(payload []byte) {
	if len(payload) < ads.HeaderSize {
		s.surfaceError(&adscore.MalformedFrameError{Err: fmt.Errorf("ads payload shorter than header: %d bytes", len(payload))})
		return
	}
	header, err := ads.DecodeHeader(payload[:ads.HeaderSize])
	if err != nil {
		s.surfaceError(&adscore.MalformedFrameError{Err: err})
		return
	}
	body := payload[ads.HeaderSize:]
	if uint32(len(body)) != header.Length {
		s.surfaceError(&adscore.MalformedFrameError{Err: fmt.Errorf("ads header declares length %d, body is %d", header.Length, len(body))})
		return
	}

	if header.Command == ads.CmdDeviceNotification {
		stream, err := ads.DecodeNotificationStream(body)
		if err != nil {
			s.surfaceError(&adscore.MalformedFrameError{Err: err})
			return
		}
		s.registry.DispatchStream(stream)
		return
	}

	if !header.StateFlags.IsResponse() {
		s.surfaceError(&adscore.ProtocolMismatchError{Expected: "response", Got: "request"})
		return
	}

	s.pendingMu.Lock()
	slot, ok := s.pending[header.InvokeID]
	s.pendingMu.Unlock()
	if !ok {
		// No matching waiter: dropped on purpose, not fatal.
		return
	}

	var resultErr error
	if header.Result != ads.Ok {
		resultErr = &adscore.AdsError{Operation: header.Command.String(), Code: header.Result}
	}
	owned := make([]byte, len(body))
	copy(owned, body)
	select {
	case slot.deliver <- pendingResult{header: header, body: owned, err: resultErr}:
	default:
	}
}

func (s *Session) surfaceError(err error) {
	select {
	case s.errors <- err:
	default:
	}
}

func (s *Session) terminate(err error) {
	s.pendingMu.Lock()
	pending := s.pending
	s.pending = make(map[uint32]*pendingSlot)
	s.pendingMu.Unlock()
	for _, slot := range pending {
		select {
		case slot.deliver <- pendingResult{err: &adscore.ConnectionClosedError{}}:
		default:
		}
	}
	s.registry.TerminateAll()
	s.surfaceError(err)
}

// Close releases the session's source port (best effort) and closes the
// transport. Any still-pending requests are resolved with
// ConnectionClosedError; any live subscriptions are marked terminated.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.opts.logger.Info("session closing", "source", s.source.String())
		if s.source.Port != 0 {
			req := frame.PortCloseRequest{Port: s.source.Port}
			if payload, err := req.MarshalBinary(); err == nil {
				_ = s.writeFrame(frame.Frame{Command: frame.RouterCommandPortClose, Payload: payload})
			}
		}
		s.closeErr = s.conn.Close()
		s.cancel()
		_ = s.group.Wait()
		s.terminate(&adscore.ConnectionClosedError{})
	})
	return s.closeErr
}
