// config provides the engine's TOML configuration file and the
// default on-disk locations for it and the training database.
package config

import "os"
import "fmt"

import "github.com/BurntSushi/toml"

// FileConfig represents the TOML configuration file. Every field is
// optional; nil means "use the engine default".
type FileConfig struct {
	Capture CaptureConfig `toml:"capture"`
	Canvas CanvasConfig `toml:"canvas"`
	Synthesis SynthesisConfig `toml:"synthesis"`
}

// Capture-related settings.
type CaptureConfig struct {
	PalmRadius *float64 `toml:"palm-radius"`
	BaseWidth *float64 `toml:"base-width"`
}

// Canvas viewport settings.
type CanvasConfig struct {
	MinScale *float64 `toml:"min-scale"`
	MaxScale *float64 `toml:"max-scale"`
}

// Synthesis settings.
type SynthesisConfig struct {
	GlyphHeight *float64 `toml:"glyph-height"`
	LineHeight *float64 `toml:"line-height"`
	MaxLineWidth *float64 `toml:"max-line-width"`
	ConnectMaxDistance *float64 `toml:"connect-max-distance"`
	ConnectMaxAngle *float64 `toml:"connect-max-angle"`
	Seed *int64 `toml:"seed"`
}

// Reads a TOML config from the given path. A missing file is not an
// error; you simply get the zero config and engine defaults apply.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Parses a TOML config from raw bytes. Mostly here for tests and
// embedding scenarios.
func Parse(data []byte) (FileConfig, error) {
	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
