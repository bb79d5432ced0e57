package experiments

import (
	"adversarial/agent"
	"adversarial/meta"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

const DefaultOutput = "results"

// Config describes an experiment: every agent plays Games games as the
// maximizing agent against uniformly random adversaries.
type Config struct {
	Name       string         `yaml:"name"`
	Layout     string         `yaml:"layout"`
	Ghosts     *int           `yaml:"ghosts"` // Omitted keeps every adversary of the layout
	Games      int            `yaml:"games"`
	Seed       uint64         `yaml:"seed"`
	MaxMoves   int            `yaml:"maxMoves"`
	Goroutines int            `yaml:"goroutines"`
	Output     string         `yaml:"output"`
	Agents     []agent.Config `yaml:"agents"`
}

// LoadConfig reads a YAML experiment config, fills in defaults and validates
// it. Unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open experiment config: %w", err)
	}
	defer f.Close()

	var config Config
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) withDefaults() Config {
	if c.Games <= 0 {
		c.Games = meta.NUM_GAMES
	}
	if c.MaxMoves <= 0 {
		c.MaxMoves = meta.MAX_MOVES
	}
	if c.Goroutines <= 0 {
		c.Goroutines = meta.GO_ROUTINES
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	return c
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if c.Layout == "" {
		return fmt.Errorf("%w: missing layout", ErrInvalidConfig)
	}
	if c.Ghosts != nil && *c.Ghosts < 0 {
		return fmt.Errorf("%w: negative ghosts", ErrInvalidConfig)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidConfig)
	}

	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%w: agent %d: %w", ErrInvalidConfig, a.ID, err)
		}
	}
	return nil
}
