// Package config loads and validates the YAML file that drives cmd/wfcgen:
// the prototype catalog, grid dimensions, and solver run parameters, kept
// out of internal/solver itself so the core algorithm never depends on a
// file format.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/boundary"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
)

// Prototype is the YAML-facing shape of catalog.RawPrototype. Tile is kept
// as a raw string label here; cmd/wfcgen passes it through to
// catalog.RawPrototype.Tile unchanged, since the solver treats it as an
// opaque payload.
type Prototype struct {
	Description string `yaml:"description"`
	Tile        string `yaml:"tile"`
	Weight      int    `yaml:"weight"`
	Rotation    int    `yaml:"rotation"`
	Sockets     struct {
		PosX string `yaml:"posX"`
		NegX string `yaml:"negX"`
		PosZ string `yaml:"posZ"`
		NegZ string `yaml:"negZ"`
		PosY string `yaml:"posY"`
		NegY string `yaml:"negY"`
	} `yaml:"sockets"`
}

// Grid is the requested grid extent.
type Grid struct {
	Width  int `yaml:"width"`
	Depth  int `yaml:"depth"`
	Height int `yaml:"height"`
}

// Run holds the solver's tunable run parameters.
type Run struct {
	PropagationDepth int   `yaml:"propagationDepth"` // -1 means unbounded
	RetryCount       int   `yaml:"retryCount"`        // -1 means unbounded
	Seed             int64 `yaml:"seed"`
}

// Config is the full contents of a wfcgen YAML config file.
type Config struct {
	Prototypes []Prototype `yaml:"prototypes"`
	Grid       Grid        `yaml:"grid"`
	Run        Run         `yaml:"run"`
	// Boundary names a rule set resolved via internal/boundary.Named;
	// "canonical", "none", or "" (equivalent to "none").
	Boundary string `yaml:"boundary"`
}

// Default returns a minimal, valid configuration: a single self-compatible
// prototype on a 4x4x4 grid with unbounded propagation and retries.
func Default() *Config {
	return &Config{
		Prototypes: []Prototype{
			{
				Description: "default",
				Weight:      1,
				Sockets: struct {
					PosX string `yaml:"posX"`
					NegX string `yaml:"negX"`
					PosZ string `yaml:"posZ"`
					NegZ string `yaml:"negZ"`
					PosY string `yaml:"posY"`
					NegY string `yaml:"negY"`
				}{PosX: "S", NegX: "S", PosZ: "S", NegZ: "S", PosY: "S", NegY: "S"},
			},
		},
		Grid:     Grid{Width: 4, Depth: 4, Height: 4},
		Run:      Run{PropagationDepth: -1, RetryCount: -1, Seed: 1},
		Boundary: "none",
	}
}

// Load reads and validates a YAML config file. An empty path returns
// Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	cfg.Prototypes = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields Load cannot enforce through the YAML
// unmarshaler alone.
func (c *Config) Validate() error {
	if len(c.Prototypes) == 0 {
		return errors.New("config: prototypes must be non-empty")
	}
	for i, p := range c.Prototypes {
		if p.Weight < 1 {
			return fmt.Errorf("config: prototypes[%d].weight must be >= 1", i)
		}
	}
	if c.Grid.Width < 1 || c.Grid.Depth < 1 || c.Grid.Height < 1 {
		return errors.New("config: grid width/depth/height must all be >= 1")
	}
	if c.Run.PropagationDepth < -1 {
		return errors.New("config: run.propagationDepth must be -1 or >= 0")
	}
	if c.Run.RetryCount < -1 {
		return errors.New("config: run.retryCount must be -1 or >= 0")
	}
	if _, ok := boundary.Named(c.Boundary); !ok {
		return fmt.Errorf("config: unknown boundary rule set %q", c.Boundary)
	}
	return nil
}

// RawPrototypes converts the YAML prototype list to catalog.RawPrototype,
// the shape catalog.Build expects.
func (c *Config) RawPrototypes() []catalog.RawPrototype {
	out := make([]catalog.RawPrototype, len(c.Prototypes))
	for i, p := range c.Prototypes {
		out[i] = catalog.RawPrototype{
			Description: p.Description,
			Tile:        p.Tile,
			Weight:      p.Weight,
			Rotation:    p.Rotation,
			Sockets: [6]string{
				p.Sockets.PosX, p.Sockets.NegX,
				p.Sockets.PosZ, p.Sockets.NegZ,
				p.Sockets.PosY, p.Sockets.NegY,
			},
		}
	}
	return out
}
