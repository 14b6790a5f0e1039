package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML file.
// Only keys present in the file replace the defaults.
type Tuning struct {
	Match   MatchConfig   `yaml:"match"`
	Tank    TankConfig    `yaml:"tank"`
	Shell   ShellConfig   `yaml:"shell"`
	Camera  CameraConfig  `yaml:"camera"`
	Minimap MinimapConfig `yaml:"minimap"`
}

// CurrentTuning snapshots the active tunable configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Match:   Match,
		Tank:    Tank,
		Shell:   Shell,
		Camera:  Camera,
		Minimap: Minimap,
	}
}

// Apply installs the tuning values as the active configuration.
func (t Tuning) Apply() {
	Match = t.Match
	Tank = t.Tank
	Shell = t.Shell
	Camera = t.Camera
	Minimap = t.Minimap
}

// ApplyOverrides decodes YAML on top of the current configuration and installs the result.
// Nothing changes when decoding fails.
func ApplyOverrides(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if t.Match.MinPlayers < PlayerLimitMin || t.Match.MaxPlayers > PlayerLimitMax || t.Match.MaxPlayers < t.Match.MinPlayers {
		return fmt.Errorf("invalid player bounds %d..%d, must lie within %d..%d",
			t.Match.MinPlayers, t.Match.MaxPlayers, PlayerLimitMin, PlayerLimitMax)
	}
	if t.Match.RoundsBudget < t.Match.MaxPlayers {
		return fmt.Errorf("rounds_budget %d must be at least max_players %d", t.Match.RoundsBudget, t.Match.MaxPlayers)
	}
	if t.Match.CameraSwapCheckFrequency < 1 {
		return fmt.Errorf("camera_swap_check_frequency must be positive, got %d", t.Match.CameraSwapCheckFrequency)
	}
	t.Apply()
	return nil
}

// LoadOverrides reads a YAML tuning file and applies it.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
