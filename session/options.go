package session

import (
	"fmt"
	"time"

	"github.com/mrpasztoradam/adscore"
	"github.com/mrpasztoradam/adscore/internal/ams"
)

// Option configures a Session at Connect time. Grounded on the
// teacher's functional-options Client configuration (clientConfig /
// Option in client.go), generalized to the session-layer concerns this
// core covers: transport address, AMS addressing, timeouts, logging,
// and notification sink sizing.
type Option func(*Options) error

// Options holds the resolved Session configuration after every Option
// has been applied.
type Options struct {
	transportAddress string
	target           ams.Address
	source           ams.Address
	hasSource        bool
	requestTimeout   time.Duration
	logger           adscore.Logger
	sinkCapacity     int
}

func defaultOptions() *Options {
	return &Options{
		target:         ams.Address{Port: ams.PortPLCRuntime1},
		requestTimeout: 5 * time.Second,
		logger:         adscore.DefaultLogger,
		sinkCapacity:   16,
	}
}

// WithTransportAddress sets the TCP "host:port" to dial. Required.
func WithTransportAddress(address string) Option {
	return func(o *Options) error {
		if address == "" {
			return fmt.Errorf("adscore: transport address cannot be empty")
		}
		o.transportAddress = address
		return nil
	}
}

// WithTarget sets the AMS address of the peer this session talks to.
// When omitted, the target is the all-zero NetId at port 851
// (ams.PortPLCRuntime1).
func WithTarget(target ams.Address) Option {
	return func(o *Options) error {
		o.target = target
		return nil
	}
}

// WithSource pins the session's own AMS address, skipping the
// PortConnect handshake (for static-route peers that already know this
// client's address). When omitted, Connect performs the PortConnect
// handshake and adopts the router-assigned address.
func WithSource(source ams.Address) Option {
	return func(o *Options) error {
		o.source = source
		o.hasSource = true
		return nil
	}
}

// WithRequestTimeout sets the default deadline applied to requests that
// do not supply their own context deadline.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *Options) error {
		if timeout <= 0 {
			return fmt.Errorf("adscore: request timeout must be positive")
		}
		o.requestTimeout = timeout
		return nil
	}
}

// WithLogger sets the session's logger.
func WithLogger(logger adscore.Logger) Option {
	return func(o *Options) error {
		o.logger = logger
		return nil
	}
}

// WithNotificationSinkCapacity sets the per-subscription channel buffer
// size used by Session.Subscribe. The registry drops the newest sample
// when a sink's buffer is full (see internal/notify.ChanSink).
func WithNotificationSinkCapacity(capacity int) Option {
	return func(o *Options) error {
		if capacity <= 0 {
			return fmt.Errorf("adscore: notification sink capacity must be positive")
		}
		o.sinkCapacity = capacity
		return nil
	}
}
