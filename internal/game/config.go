package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Just-a-Unity-Dev/aeros/data"
)

// Upper bounds accepted by Validate.
const (
	MaxMapSize         = 1000
	MaxMessageLogLimit = 10000
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`

	FOVRadius        int `yaml:"fov_radius"`
	MonsterFOVRadius int `yaml:"monster_fov_radius"`

	MaxRoomMonsters int `yaml:"max_room_monsters"`
	MessageLogLimit int `yaml:"message_log_limit"`
}

// DefaultConfig parses the embedded default configuration.
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := decodeStrict(data.DefaultConfig(), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse default config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads the defaults and overlays the YAML file at path, if any.
func LoadConfig(path string) (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := decodeStrict(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.MapWidth < 20 || c.MapHeight < 20 {
		errs = append(errs, fmt.Errorf("map must be at least 20x20, got %dx%d", c.MapWidth, c.MapHeight))
	}
	if c.MapWidth > MaxMapSize || c.MapHeight > MaxMapSize {
		errs = append(errs, fmt.Errorf("map must be at most %dx%d, got %dx%d", MaxMapSize, MaxMapSize, c.MapWidth, c.MapHeight))
	}
	if c.FOVRadius < 1 {
		errs = append(errs, errors.New("fov_radius must be positive"))
	}
	if c.MonsterFOVRadius < 1 {
		errs = append(errs, errors.New("monster_fov_radius must be positive"))
	}
	if c.MaxRoomMonsters < 0 {
		errs = append(errs, errors.New("max_room_monsters must not be negative"))
	}
	if c.MessageLogLimit < 0 || c.MessageLogLimit > MaxMessageLogLimit {
		errs = append(errs, fmt.Errorf("message_log_limit must be between 0 and %d, got %d", MaxMessageLogLimit, c.MessageLogLimit))
	}
	return errors.Join(errs...)
}

// decodeStrict overlays YAML onto cfg, rejecting keys Config does not know.
// An empty document leaves cfg unchanged.
func decodeStrict(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
