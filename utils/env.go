package utils

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env into the process environment. Variables that are
// already set win. It reports whether a .env file was found.
func LoadEnv() bool {
	return godotenv.Load() == nil
}

// Getenv returns the value of key, or fallback when it is unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
