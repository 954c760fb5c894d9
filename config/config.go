// Package config loads the tunables of the chase camera demo from a YAML
// document.
//
// Every field is optional: values missing from the document keep their
// defaults.
//
package config

import (
	"io"
	"os"
	"time"

	"github.com/db47h/chasecam/frametime"
	"github.com/db47h/chasecam/spring"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Window settings.
//
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// Timer settings. See package frametime.
//
type Timer struct {
	Window   int           `yaml:"window"`
	MaxDelta time.Duration `yaml:"max_delta"`
	Initial  time.Duration `yaml:"initial"`
	MinDelta time.Duration `yaml:"min_delta"`
	Retries  int           `yaml:"retries"`
}

// Spring settings. See package spring.
//
type Spring struct {
	Stiffness     float32 `yaml:"stiffness"`
	DampingOffset float32 `yaml:"damping_offset"`
	DeadZone      float32 `yaml:"dead_zone"`
}

// Camera settings.
//
type Camera struct {
	Speed         float32 `yaml:"speed"`
	Sensitivity   float32 `yaml:"sensitivity"`
	LookFrequency float64 `yaml:"look_frequency"`
	LookDamping   float64 `yaml:"look_damping"`
}

// Mesh selects the point cloud to display.
//
type Mesh struct {
	Name    string  `yaml:"name"`
	YOffset float32 `yaml:"y_offset"`
	Spin    float32 `yaml:"spin"` // degrees per second
}

// Config is the root of the configuration document.
//
type Config struct {
	Window Window `yaml:"window"`
	Timer  Timer  `yaml:"timer"`
	Spring Spring `yaml:"spring"`
	Camera Camera `yaml:"camera"`
	Mesh   Mesh   `yaml:"mesh"`
}

// Default returns the default configuration.
//
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "Chase camera",
			Width:  640,
			Height: 480,
			VSync:  true,
		},
		Timer: Timer{
			Window:   frametime.DefaultWindow,
			MaxDelta: frametime.DefaultMaxDelta,
			Initial:  frametime.DefaultInitial,
			MinDelta: frametime.DefaultMinDelta,
			Retries:  frametime.DefaultRetries,
		},
		Spring: Spring{
			Stiffness:     spring.DefaultParams.Stiffness,
			DampingOffset: spring.DefaultParams.DampingOffset,
			DeadZone:      spring.DefaultParams.DeadZone,
		},
		Camera: Camera{
			Speed:       5,
			Sensitivity: 0.3,
		},
		Mesh: Mesh{
			Name:    "sphere.obj",
			YOffset: 2,
			Spin:    6,
		},
	}
}

// Load reads the configuration file at path over the defaults.
//
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Decode reads a configuration document from r over the defaults and
// validates the result. Unknown keys are an error.
//
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg to w as YAML.
//
func (cfg *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "encode")
	}
	return enc.Close()
}

// Validate checks that all values are usable.
//
func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if _, err := frametime.New(new(frametime.ManualClock), cfg.TimerOptions()...); err != nil {
		return err
	}
	if err := cfg.SpringParams().Validate(); err != nil {
		return err
	}
	if cfg.Camera.Speed <= 0 {
		return errors.Errorf("invalid camera speed %g", cfg.Camera.Speed)
	}
	if cfg.Camera.LookFrequency < 0 || cfg.Camera.LookDamping < 0 {
		return errors.New("look smoothing parameters must not be negative")
	}
	return nil
}

// TimerOptions converts the timer settings into frametime options.
//
func (cfg *Config) TimerOptions() []frametime.Option {
	t := &cfg.Timer
	return []frametime.Option{
		frametime.Window(t.Window),
		frametime.MaxDelta(t.MaxDelta),
		frametime.Initial(t.Initial),
		frametime.MinDelta(t.MinDelta),
		frametime.Retries(t.Retries),
	}
}

// SpringParams returns the spring parameters.
//
func (cfg *Config) SpringParams() spring.Params {
	return spring.Params{
		Stiffness:     cfg.Spring.Stiffness,
		DampingOffset: cfg.Spring.DampingOffset,
		DeadZone:      cfg.Spring.DeadZone,
	}
}
