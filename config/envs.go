// Package config loads runtime settings for the mazegraph binaries from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	Width    int    // Default maze width
	Height   int    // Default maze height
	Seed     int64  // Seed for reproducible mazes, valid when HasSeed
	HasSeed  bool   // Whether MAZE_SEED was set
	Format   string // Default output format: "list" or "matrix"
	Addr     string // Listen address for the HTTP server
	BaseURL  string // Base URL for API routes
	MaxCells int    // Largest maze (width*height) the server will generate
	GinMode  string // Mode for the Gin framework (release, debug, test)
}

// Defaults used when a variable is unset.
const (
	DefaultWidth    = 10
	DefaultHeight   = 10
	DefaultFormat   = "list"
	DefaultAddr     = ":8080"
	DefaultBaseURL  = "/api"
	DefaultMaxCells = 10000
	DefaultGinMode  = "release"
)

// Load reads the given .env files (".env" when none are named) into the
// process environment and builds a Config from it. A missing file is not an
// error; variables already present in the environment take precedence.
// Malformed numbers are returned as errors.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		Format:  getEnvWithDefault("MAZE_FORMAT", DefaultFormat),
		Addr:    getEnvWithDefault("MAZE_ADDR", DefaultAddr),
		BaseURL: getEnvWithDefault("MAZE_BASE_URL", DefaultBaseURL),
		GinMode: getEnvWithDefault("GIN_MODE", DefaultGinMode),
	}

	var err error
	if cfg.Width, err = getEnvAsInt("MAZE_WIDTH", DefaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsInt("MAZE_HEIGHT", DefaultHeight); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells, err = getEnvAsInt("MAZE_MAX_CELLS", DefaultMaxCells); err != nil {
		return Config{}, err
	}
	if raw, ok := os.LookupEnv("MAZE_SEED"); ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: MAZE_SEED must be a 64-bit integer: %w", err)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}

	return cfg, nil
}

// getEnvAsInt retrieves an integer variable or returns defaultValue if unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
