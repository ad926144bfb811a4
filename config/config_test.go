package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")
	contents := "target: 192.168.1.10:48898\nams_net_id: 192.168.1.10.1.1\nams_port: 851\ntimeout_seconds: 10\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Target != "192.168.1.10:48898" {
		t.Errorf("Target = %q", cfg.Target)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", cfg.TimeoutSeconds)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDefaultUsedWhenFieldOmitted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")
	if err := os.WriteFile(path, []byte("target: 10.0.0.1:48898\nams_net_id: 10.0.0.1.1.1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TimeoutSeconds != Default().TimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want default %d", cfg.TimeoutSeconds, Default().TimeoutSeconds)
	}
}

func TestOptionsBuildsSessionOptions(t *testing.T) {
	cfg := Default()
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if len(opts) == 0 {
		t.Error("expected at least one session.Option")
	}
}

func TestOptionsRejectsBadNetID(t *testing.T) {
	cfg := Default()
	cfg.AMSNetID = "not-a-netid"
	if _, err := cfg.Options(); err == nil {
		t.Error("expected an error for a malformed ams_net_id")
	}
}
