// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Keys used throughout the application.
const (
	KeyDatabasePath  = "database.path"
	KeyVoiceExpected = "voice.expected_type"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
)

// SetDefaults registers default values for every config key.
func SetDefaults() {
	viper.SetDefault(KeyDatabasePath, defaultDatabasePath())
	viper.SetDefault(KeyVoiceExpected, "expense")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "console")
}

// DatabasePath returns the configured database path with ~ and env
// vars expanded.
func DatabasePath() string {
	return ExpandPath(viper.GetString(KeyDatabasePath))
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lingqian.db"
	}
	return filepath.Join(home, ".local", "share", "lingqian", "lingqian.db")
}
