// Package config loads runtime configuration from the environment, with
// an optional .env file for local overrides.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when no environment override is present.
const (
	DefaultScreenWidth  = 1280
	DefaultScreenHeight = 800
	DefaultPlayerSpeed  = 4
	DefaultDataDir      = "data"
)

// Config holds the runtime settings of the game.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	PlayerSpeed  int
	DataDir      string
}

// Load builds the configuration from defaults, a .env file if one exists,
// and DAMSELGROVE_* environment variables, in increasing precedence.
func Load() *Config {
	// A missing .env file is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration overrides from .env")
	}

	return &Config{
		ScreenWidth:  envInt("DAMSELGROVE_WIDTH", DefaultScreenWidth),
		ScreenHeight: envInt("DAMSELGROVE_HEIGHT", DefaultScreenHeight),
		PlayerSpeed:  envInt("DAMSELGROVE_PLAYER_SPEED", DefaultPlayerSpeed),
		DataDir:      envString("DAMSELGROVE_DATA_DIR", DefaultDataDir),
	}
}

func envInt(name string, defaultVal int) int {
	v := os.Getenv(name)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q", name, v)
		return defaultVal
	}
	return n
}

func envString(name string, defaultVal string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultVal
}
