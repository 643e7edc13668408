package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration parameters of the application.
type Config struct {
	DatabasePath   string
	JWTSecretKey   string
	ServerPort     int
	AdminPassword  string
	PlayerPassword string
}

// Load reads configuration from environment variables, optionally loading a
// .env file first (useful for local development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "caos.db"
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	// The login roster is fixed (one admin, one shared player account), only
	// the passwords are configurable.
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "1234"
	}
	playerPass := os.Getenv("PLAYER_PASSWORD")
	if playerPass == "" {
		playerPass = "1234"
	}

	cfg := &Config{
		DatabasePath:   dbPath,
		JWTSecretKey:   jwtKey,
		ServerPort:     port,
		AdminPassword:  adminPass,
		PlayerPassword: playerPass,
	}

	return cfg, nil
}
