package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DAMSELGROVE_WIDTH", "")
	t.Setenv("DAMSELGROVE_HEIGHT", "")
	t.Setenv("DAMSELGROVE_PLAYER_SPEED", "")
	t.Setenv("DAMSELGROVE_DATA_DIR", "")

	cfg := Load()

	if cfg.ScreenWidth != DefaultScreenWidth {
		t.Errorf("Expected width %d, got %d", DefaultScreenWidth, cfg.ScreenWidth)
	}
	if cfg.ScreenHeight != DefaultScreenHeight {
		t.Errorf("Expected height %d, got %d", DefaultScreenHeight, cfg.ScreenHeight)
	}
	if cfg.PlayerSpeed != DefaultPlayerSpeed {
		t.Errorf("Expected player speed %d, got %d", DefaultPlayerSpeed, cfg.PlayerSpeed)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("Expected data dir %q, got %q", DefaultDataDir, cfg.DataDir)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DAMSELGROVE_WIDTH", "640")
	t.Setenv("DAMSELGROVE_HEIGHT", "480")
	t.Setenv("DAMSELGROVE_PLAYER_SPEED", "2")
	t.Setenv("DAMSELGROVE_DATA_DIR", "testdata")

	cfg := Load()

	if cfg.ScreenWidth != 640 || cfg.ScreenHeight != 480 {
		t.Errorf("Expected 640x480, got %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.PlayerSpeed != 2 {
		t.Errorf("Expected player speed 2, got %d", cfg.PlayerSpeed)
	}
	if cfg.DataDir != "testdata" {
		t.Errorf("Expected data dir 'testdata', got %q", cfg.DataDir)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DAMSELGROVE_WIDTH", "not-a-number")
	t.Setenv("DAMSELGROVE_PLAYER_SPEED", "-3")

	cfg := Load()

	if cfg.ScreenWidth != DefaultScreenWidth {
		t.Errorf("Expected invalid width ignored, got %d", cfg.ScreenWidth)
	}
	if cfg.PlayerSpeed != DefaultPlayerSpeed {
		t.Errorf("Expected invalid speed ignored, got %d", cfg.PlayerSpeed)
	}
}
