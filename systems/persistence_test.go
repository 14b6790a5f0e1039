package systems

import (
	"testing"

	cfg "github.com/automoto/tanks-mp/config"
)

func TestDecodePreferences_Clamps(t *testing.T) {
	prefs := DefaultPreferences()
	if err := DecodePreferences([]byte(`{"numPlayers":9,"minimapSize":100,"fullscreen":true}`), &prefs); err != nil {
		t.Fatalf("DecodePreferences: %v", err)
	}
	if prefs.NumPlayers != cfg.Match.MaxPlayers {
		t.Fatalf("player count should clamp to %d, got %d", cfg.Match.MaxPlayers, prefs.NumPlayers)
	}
	if prefs.MinimapSize != cfg.Minimap.MaxSize {
		t.Fatalf("minimap size should clamp to %.1f, got %.1f", cfg.Minimap.MaxSize, prefs.MinimapSize)
	}
	if !prefs.Fullscreen {
		t.Fatal("fullscreen should be kept")
	}
}

func TestDecodePreferences_MissingFieldsKeepDefaults(t *testing.T) {
	prefs := DefaultPreferences()
	if err := DecodePreferences([]byte(`{"numPlayers":3}`), &prefs); err != nil {
		t.Fatalf("DecodePreferences: %v", err)
	}
	if prefs.NumPlayers != 3 || prefs.MinimapSize != cfg.Minimap.DefaultSize {
		t.Fatalf("unexpected prefs %+v", prefs)
	}
}

func TestDecodePreferences_InvalidJSON(t *testing.T) {
	prefs := DefaultPreferences()
	if err := DecodePreferences([]byte(`{not json`), &prefs); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadPreferences_WithoutStore(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	defer func() { gdataManager = saved }()

	if got := LoadPreferences(); got != DefaultPreferences() {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if err := SavePreferences(DefaultPreferences()); err != nil {
		t.Fatalf("saving without a store should be a no-op, got %v", err)
	}
}
