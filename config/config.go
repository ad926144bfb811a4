// Package config loads session connection settings from YAML, the way
// the teacher's middleware layer loads its PLCConfig block — trimmed to
// only the fields the session core needs (no HTTP/CORS/middleware
// concerns, those live above this layer).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrpasztoradam/adscore/internal/ams"
	"github.com/mrpasztoradam/adscore/session"
)

// Config is the YAML-serializable shape of a session's connection
// parameters.
type Config struct {
	Target         string `yaml:"target"`
	AMSNetID       string `yaml:"ams_net_id"`
	AMSPort        uint16 `yaml:"ams_port"`
	SourceNetID    string `yaml:"source_net_id"`
	SourcePort     uint16 `yaml:"source_port"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Default returns the package default, mirroring the teacher's
// middleware.DefaultConfig PLC block.
func Default() *Config {
	return &Config{
		Target:         "localhost:48898",
		AMSNetID:       "10.0.10.20.1.1",
		AMSPort:        uint16(ams.PortPLCRuntime1),
		TimeoutSeconds: 5,
	}
}

// Load reads filename as YAML, falling back to Default for any field
// the file omits.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", filename, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filename, err)
	}
	return cfg, nil
}

// Options converts Config into the session.Option list Connect expects.
// A zero SourceNetID leaves the source address unset, so Connect
// performs the PortConnect handshake.
func (c *Config) Options() ([]session.Option, error) {
	netID, err := ams.ParseNetID(c.AMSNetID)
	if err != nil {
		return nil, fmt.Errorf("config: ams_net_id: %w", err)
	}
	opts := []session.Option{
		session.WithTransportAddress(c.Target),
		session.WithTarget(ams.Address{NetID: netID, Port: ams.Port(c.AMSPort)}),
	}
	if c.TimeoutSeconds > 0 {
		opts = append(opts, session.WithRequestTimeout(time.Duration(c.TimeoutSeconds)*time.Second))
	}
	if c.SourceNetID != "" {
		sourceNetID, err := ams.ParseNetID(c.SourceNetID)
		if err != nil {
			return nil, fmt.Errorf("config: source_net_id: %w", err)
		}
		opts = append(opts, session.WithSource(ams.Address{NetID: sourceNetID, Port: ams.Port(c.SourcePort)}))
	}
	return opts, nil
}
