package env

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	dotenvFile = ".env"
)

// Get returns the value of key from the process environment. The .env file in the working
// directory is loaded the first time a key is missing; existing variables are never overridden.
func Get(key string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}

	dotenvOnce.Do(func() {
		if _, err := os.Stat(dotenvFile); err == nil {
			_ = godotenv.Load(dotenvFile)
		}
	})

	return os.Getenv(key)
}

// GetOr returns Get(key), or fallback when the key is empty.
func GetOr(key, fallback string) string {
	if value := Get(key); value != "" {
		return value
	}
	return fallback
}

// Load reads an explicit env file into the process environment.
func Load(filenames ...string) error {
	return godotenv.Load(filenames...)
}
