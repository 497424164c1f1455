package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env files in priority order: .env.{APP_ENV}.local, .env.local, .env.
// godotenv.Load never overwrites variables that are already set, so the
// process environment wins and earlier files win over later ones.
// Returns the files actually loaded.
func LoadDotEnv() []string {
	var candidates []string
	if env := os.Getenv("APP_ENV"); env != "" {
		candidates = append(candidates, ".env."+env+".local")
	}
	candidates = append(candidates, ".env.local", ".env")

	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
