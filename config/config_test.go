package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/db47h/chasecam/spring"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if p := cfg.SpringParams(); p != spring.DefaultParams {
		t.Errorf("Expected default spring params, got %+v", p)
	}
}

func TestDecode(t *testing.T) {
	const doc = `
window:
  width: 1024
timer:
  window: 8
  max_delta: 100ms
spring:
  stiffness: 4
camera:
  look_frequency: 6
  look_damping: 1
`
	cfg, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 480 {
		t.Errorf("Unexpected window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Timer.Window != 8 || cfg.Timer.MaxDelta != 100*time.Millisecond {
		t.Errorf("Unexpected timer settings %+v", cfg.Timer)
	}
	if cfg.Spring.Stiffness != 4 || cfg.Spring.DeadZone != spring.DefaultParams.DeadZone {
		t.Errorf("Unexpected spring settings %+v", cfg.Spring)
	}
	if cfg.Camera.LookFrequency != 6 || cfg.Camera.Speed != 5 {
		t.Errorf("Unexpected camera settings %+v", cfg.Camera)
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window != Default().Window {
		t.Errorf("Expected defaults, got %+v", cfg.Window)
	}
}

func TestDecodeErrors(t *testing.T) {
	docs := []string{
		"window: {width: 0}",
		"timer: {window: 0}",
		"timer: {max_delta: 10ms, initial: 20ms}",
		"spring: {dead_zone: 0}",
		"camera: {speed: -1}",
		"camera: {look_damping: -1}",
		"bogus: 1",
		"timer: {max_delta: soon}",
	}
	for _, doc := range docs {
		if _, err := Decode(strings.NewReader(doc)); err == nil {
			t.Errorf("%q: expected an error", doc)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Mesh.Name = "bunny.obj"
	cfg.Timer.Retries = 2
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "chasecam.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("Expected %+v, got %+v", cfg, got)
	}

	if _, err = Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
