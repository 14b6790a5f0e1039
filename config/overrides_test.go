package config

import "testing"

func TestApplyOverrides_OnlyNamedFieldsChange(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	data := []byte(`
match:
  start_delay: 1.5
  distance_to_swap_to_global_camera: 40
minimap:
  max_size: 50
`)
	if err := ApplyOverrides(data); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	if Match.StartDelay != 1.5 {
		t.Fatalf("start delay should be 1.5, got %.2f", Match.StartDelay)
	}
	if Match.DistanceToSwapToGlobalCamera != 40 {
		t.Fatalf("swap distance should be 40, got %.2f", Match.DistanceToSwapToGlobalCamera)
	}
	if Match.EndDelay != saved.Match.EndDelay {
		t.Fatalf("end delay should keep default %.2f, got %.2f", saved.Match.EndDelay, Match.EndDelay)
	}
	if Match.CameraSwapCheckFrequency != 60 {
		t.Fatalf("check frequency should keep default 60, got %d", Match.CameraSwapCheckFrequency)
	}
	if Minimap.MaxSize != 50 || Minimap.MinSize != saved.Minimap.MinSize {
		t.Fatalf("minimap bounds wrong: %.1f..%.1f", Minimap.MinSize, Minimap.MaxSize)
	}
	if Tank != saved.Tank {
		t.Fatal("tank config should be untouched")
	}
}

func TestApplyOverrides_RejectsInvalid(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	if err := ApplyOverrides([]byte("match:\n  camera_swap_check_frequency: 0\n")); err == nil {
		t.Fatal("expected error for zero check frequency")
	}
	if Match.CameraSwapCheckFrequency != saved.Match.CameraSwapCheckFrequency {
		t.Fatal("failed override must not change config")
	}

	if err := ApplyOverrides([]byte("match: [1, 2")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestTicks(t *testing.T) {
	if got := Ticks(3.0); got != 180 {
		t.Fatalf("3s at 60 TPS should be 180 ticks, got %d", got)
	}
	if got := Ticks(0.75); got != 45 {
		t.Fatalf("0.75s should be 45 ticks, got %d", got)
	}
}

func TestApplyOverrides_RejectsBrokenMatchRules(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	for _, doc := range []string{
		"match:\n  min_players: 1\n",
		"match:\n  max_players: 5\n",
		"match:\n  min_players: 4\n  max_players: 3\n",
		"match:\n  rounds_budget: 0\n",
		"match:\n  rounds_budget: 3\n",
	} {
		if err := ApplyOverrides([]byte(doc)); err == nil {
			t.Fatalf("expected %q to be rejected", doc)
		}
		if Match != saved.Match {
			t.Fatalf("rejected %q must not change config", doc)
		}
	}

	if err := ApplyOverrides([]byte("match:\n  min_players: 3\n  rounds_budget: 4\n")); err != nil {
		t.Fatalf("valid rules rejected: %v", err)
	}
}
