package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultSettingsAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeSettings(t, "tickRate: 30\nfocusDepth: 10\nenableMouseWheel: false\n")

	settings, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if settings.TickRate != 30 {
		t.Errorf("tickRate = %v; expected 30", settings.TickRate)
	}
	if settings.FocusDepth != 10 {
		t.Errorf("focusDepth = %v; expected 10", settings.FocusDepth)
	}
	if settings.EnableMouseWheel {
		t.Error("enableMouseWheel should be false")
	}
	// Untouched fields keep their defaults.
	if settings.WheelSensitivity != Default().WheelSensitivity {
		t.Errorf("wheelSensitivity = %v; expected default", settings.WheelSensitivity)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"negative tick rate", "tickRate: -1\n"},
		{"zero minZ", "minZ: 0\n"},
		{"inverted clip planes", "minZ: 10\nmaxZ: 5\n"},
		{"zoom rate above one", "zoomConvergenceRate: 2\n"},
		{"malformed yaml", "fov: [\n"},
	}

	for _, test := range tests {
		path := writeSettings(t, test.contents)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
