package demo

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	KindInt  = "int"
	KindText = "text"

	FormatPlain = "plain"
	FormatTree  = "tree"
)

var ErrInvalidConfig = errors.New("invalid demo config")

// Scenario is one list to build and print. Ints is used for KindInt and
// Texts for KindText.
type Scenario struct {
	Name  string   `yaml:"name"`
	Kind  string   `yaml:"kind"`
	Ints  []int    `yaml:"ints,omitempty"`
	Texts []string `yaml:"texts,omitempty"`
}

type Config struct {
	Format    string     `yaml:"format,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// DefaultConfig reproduces the integer and text demo programs.
func DefaultConfig() Config {
	return Config{
		Format: FormatPlain,
		Scenarios: []Scenario{
			{Name: "ints", Kind: KindInt, Ints: []int{10, 20, 30}},
			{Name: "texts", Kind: KindText, Texts: []string{"data-1", "data-2", "data-3"}},
		},
	}
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Format == "" {
		cfg.Format = FormatPlain
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	if c.Format != FormatPlain && c.Format != FormatTree {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	seen := make(map[string]bool, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("%w: scenario %d has no name", ErrInvalidConfig, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true
		switch s.Kind {
		case KindInt:
			if len(s.Texts) > 0 {
				return fmt.Errorf("%w: scenario %q is %s but has texts", ErrInvalidConfig, s.Name, s.Kind)
			}
		case KindText:
			if len(s.Ints) > 0 {
				return fmt.Errorf("%w: scenario %q is %s but has ints", ErrInvalidConfig, s.Name, s.Kind)
			}
		default:
			return fmt.Errorf("%w: scenario %q has unknown kind %q", ErrInvalidConfig, s.Name, s.Kind)
		}
	}
	return nil
}
