package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of the given key from .env or the process environment.
func Config(key string) string {
	// .env is optional; in production the variables come from the environment
	godotenv.Load(".env")
	return os.Getenv(key)
}
