package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rootviz/internal/e8"
	"github.com/san-kum/rootviz/internal/geom"
	"github.com/san-kum/rootviz/internal/scene"
)

const (
	DefaultPlaneSet  = "quad"
	DefaultOutDim    = 3
	DefaultThreshold = scene.DefaultThreshold
	DefaultFPS       = 30
	DefaultRate      = 0.4
	DefaultTheme     = "retro"
)

type Config struct {
	PlaneSet   string      `yaml:"plane_set"`
	OutDim     int         `yaml:"out_dim"`
	Threshold  float64     `yaml:"threshold"`
	Rates      []float64   `yaml:"rates"`
	Angles     []float64   `yaml:"angles"`
	FPS        int         `yaml:"fps"`
	Theme      string      `yaml:"theme"`
	Projection [][]float64 `yaml:"projection"`
}

func DefaultConfig() *Config {
	return &Config{
		PlaneSet:  DefaultPlaneSet,
		OutDim:    DefaultOutDim,
		Threshold: DefaultThreshold,
		FPS:       DefaultFPS,
		Theme:     DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks cross-field consistency before the config reaches
// the scene; a bad config is rejected whole.
func (c *Config) Validate() error {
	planes, err := scene.GetPlaneSet(c.PlaneSet)
	if err != nil {
		return err
	}
	if c.OutDim != 2 && c.OutDim != 3 {
		return fmt.Errorf("out_dim must be 2 or 3, got %d", c.OutDim)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %f", c.Threshold)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if len(c.Rates) != 0 && len(c.Rates) != len(planes) {
		return fmt.Errorf("rates has %d entries, plane set %q has %d planes",
			len(c.Rates), c.PlaneSet, len(planes))
	}
	if len(c.Angles) != 0 && len(c.Angles) != len(planes) {
		return fmt.Errorf("angles has %d entries, plane set %q has %d planes",
			len(c.Angles), c.PlaneSet, len(planes))
	}
	if c.Projection != nil {
		if len(c.Projection) != e8.Dim {
			return fmt.Errorf("projection must have %d rows, got %d", e8.Dim, len(c.Projection))
		}
		for i, row := range c.Projection {
			if len(row) != c.OutDim {
				return fmt.Errorf("projection row %d has %d entries, out_dim is %d",
					i, len(row), c.OutDim)
			}
		}
	}
	return nil
}

// GetProjection returns the configured projection matrix, falling back
// to the package default for the configured output dimension.
func (c *Config) GetProjection() (geom.Projection, error) {
	if c.Projection != nil {
		return geom.Projection(c.Projection), nil
	}
	return geom.Default(c.OutDim)
}

// BuildScene assembles a scene for the given root system: plane set,
// projection, threshold, initial angles and spin rates.
func (c *Config) BuildScene(rs *e8.RootSystem) (*scene.Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	planes, _ := scene.GetPlaneSet(c.PlaneSet)
	proj, err := c.GetProjection()
	if err != nil {
		return nil, err
	}

	s := scene.New(rs, planes, proj)
	s.SetThreshold(c.Threshold)
	if len(c.Angles) > 0 {
		if err := s.SetAngles(c.Angles); err != nil {
			return nil, err
		}
	}
	for k, r := range c.Rates {
		s.SetRate(k, r)
	}
	return s, nil
}
