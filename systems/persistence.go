package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/tanks-mp/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const preferencesKey = "preferences"

// SavedPreferences is the user state kept between sessions.
type SavedPreferences struct {
	NumPlayers  int     `json:"numPlayers"`
	MinimapSize float64 `json:"minimapSize"`
	Fullscreen  bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the preferences store.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tanks-mp",
	})
	if err != nil {
		return fmt.Errorf("open preferences store: %w", err)
	}
	gdataManager = m
	return nil
}

// DefaultPreferences are used when nothing has been saved yet.
func DefaultPreferences() SavedPreferences {
	return SavedPreferences{
		NumPlayers:  cfg.Match.DefaultPlayers,
		MinimapSize: cfg.Minimap.DefaultSize,
	}
}

// LoadPreferences returns the saved preferences, or the defaults when none exist.
func LoadPreferences() SavedPreferences {
	prefs := DefaultPreferences()
	if gdataManager == nil {
		return prefs
	}

	data, err := gdataManager.LoadItem(preferencesKey)
	if err != nil {
		log.Warn("could not load preferences", "err", err)
		return prefs
	}
	if len(data) == 0 {
		return prefs
	}
	if err := DecodePreferences(data, &prefs); err != nil {
		log.Warn("could not parse preferences", "err", err)
		return DefaultPreferences()
	}
	return prefs
}

// DecodePreferences parses saved preferences over prefs and clamps them to the configured ranges.
func DecodePreferences(data []byte, prefs *SavedPreferences) error {
	if err := json.Unmarshal(data, prefs); err != nil {
		return fmt.Errorf("decode preferences: %w", err)
	}
	prefs.NumPlayers = ClampPlayers(prefs.NumPlayers, cfg.Match.MaxPlayers)
	prefs.MinimapSize = clampMinimapSize(prefs.MinimapSize)
	return nil
}

// SavePreferences writes preferences to disk.
func SavePreferences(prefs SavedPreferences) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := gdataManager.SaveItem(preferencesKey, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// UpdatePreferences loads, modifies and saves preferences, logging failures.
func UpdatePreferences(modify func(*SavedPreferences)) {
	prefs := LoadPreferences()
	modify(&prefs)
	if err := SavePreferences(prefs); err != nil {
		log.Warn("could not save preferences", "err", err)
	}
}
