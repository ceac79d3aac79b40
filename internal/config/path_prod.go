//go:build prod

package config

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultDir returns the directory holding the configuration file and database
// in production builds: the user's config directory.
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "."
	}

	appDir := filepath.Join(configDir, "synapsetalk")

	err = os.MkdirAll(appDir, 0755)
	if err != nil {
		log.Printf("Warning: Failed to create app config dir: %v. Using fallback.", err)
		return "."
	}

	return appDir
}

func IsDevelopment() bool {
	return false
}
