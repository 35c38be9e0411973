package config

import (
	"errors"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log output formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Mesh conventions.
const (
	MeshClosed   = "closed"
	MeshHalfOpen = "half_open"
)

// Solver kinds.
const (
	SolverLAPACK = "lapack"
	SolverJacobi = "jacobi"
)

// Config is the complete configuration of a ribbon run.
type Config struct {
	Log                LogConfig    `yaml:"log"`
	Model              ModelConfig  `yaml:"model"`
	Ribbon             RibbonConfig `yaml:"ribbon"`
	Mesh               MeshConfig   `yaml:"mesh"`
	Solver             SolverConfig `yaml:"solver"`
	Edge               EdgeConfig   `yaml:"edge"`
	Window             WindowConfig `yaml:"window"`
	HermitianTolerance float64      `yaml:"hermitian_tolerance"`
	Sweep              SweepConfig  `yaml:"sweep"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Ribbon.Validate(); err != nil {
		return err
	}
	if err := c.Mesh.Validate(); err != nil {
		return err
	}
	if err := c.Solver.Validate(); err != nil {
		return err
	}
	if err := c.Edge.Validate(); err != nil {
		return err
	}
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if err := c.Sweep.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.HermitianTolerance, validation.Min(0.0)),
	)
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  slog.Level `yaml:"level"`
	Format string     `yaml:"format"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(LogFormatJSON, LogFormatText)),
	)
}

// ModelConfig points at the hopping file. The path may also come from the
// command line, so it is not required here.
type ModelConfig struct {
	Path string `yaml:"path"`
}

// RibbonConfig holds the ribbon geometry.
type RibbonConfig struct {
	Width int `yaml:"width"`
}

// Validate validates the ribbon configuration.
func (c *RibbonConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Required, validation.Min(1)),
	)
}

// MeshConfig holds the momentum mesh.
type MeshConfig struct {
	NK   int    `yaml:"nk"`
	Kind string `yaml:"kind"`
}

// Validate validates the mesh configuration.
func (c *MeshConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.NK, validation.Required, validation.Min(1)),
		validation.Field(&c.Kind, validation.Required, validation.In(MeshClosed, MeshHalfOpen)),
	)
}

// SolverConfig selects and tunes the eigensolver.
// Zero Tolerance and MaxSweeps use the Jacobi kernel defaults; zero Workers
// means one per CPU.
type SolverConfig struct {
	Kind      string  `yaml:"kind"`
	Tolerance float64 `yaml:"tolerance"`
	MaxSweeps int     `yaml:"max_sweeps"`
	Workers   int     `yaml:"workers"`
}

// Validate validates the solver configuration.
func (c *SolverConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Kind, validation.Required, validation.In(SolverLAPACK, SolverJacobi)),
		validation.Field(&c.Tolerance, validation.Min(0.0)),
		validation.Field(&c.MaxSweeps, validation.Min(0)),
		validation.Field(&c.Workers, validation.Min(0)),
	)
}

// EdgeConfig tunes the edge-band heuristic. ProbeIndex -1 probes the mesh
// midpoint.
type EdgeConfig struct {
	Threshold  float64 `yaml:"threshold"`
	ProbeIndex int     `yaml:"probe_index"`
}

// Validate validates the edge configuration.
func (c *EdgeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Threshold, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&c.ProbeIndex, validation.Min(-1)),
	)
}

// WindowConfig is the reported momentum range in reduced units k/2π.
type WindowConfig struct {
	KMin float64 `yaml:"kmin"`
	KMax float64 `yaml:"kmax"`
}

var errWindowOrder = errors.New("window: kmin must not exceed kmax")

// Validate validates the window configuration.
func (c *WindowConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.KMin, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.KMax, validation.Min(0.0), validation.Max(1.0)),
	); err != nil {
		return err
	}
	if c.KMin > c.KMax {
		return errWindowOrder
	}
	return nil
}

// SweepConfig lists the widths visited by the sweep command.
type SweepConfig struct {
	Widths []int `yaml:"widths"`
}

// Validate validates the sweep configuration.
func (c *SweepConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Widths, validation.Each(validation.Required, validation.Min(1))),
	)
}

// NewDefaultConfig returns a Config with the defaults of the ribbon study.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: LogFormatText,
		},
		Ribbon: RibbonConfig{
			Width: 30,
		},
		Mesh: MeshConfig{
			NK:   150,
			Kind: MeshClosed,
		},
		Solver: SolverConfig{
			Kind: SolverLAPACK,
		},
		Edge: EdgeConfig{
			Threshold:  0.15,
			ProbeIndex: -1,
		},
		Window: WindowConfig{
			KMin: 0,
			KMax: 1,
		},
		HermitianTolerance: 1e-8,
		Sweep: SweepConfig{
			Widths: []int{10, 20, 30},
		},
	}
}
