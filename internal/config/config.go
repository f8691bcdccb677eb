package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pipedex-io/pipedex/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys recognized by the analysis run.
const (
	KeyLibraryRoot  = "library_root"
	KeyManifestPath = "manifest_path"
	KeyOutputPath   = "output_path"
)

// Defaults used when a key is not configured.
const (
	DefaultLibraryRoot  = "library"
	DefaultManifestPath = "library/requirements.txt"
	DefaultOutputPath   = "output/catalog.json"
)

// Dir returns the path to the Pipedex config directory (~/.pipedex/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.pipedex/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// LibraryRoot returns the dotted module root of the node library to analyze.
func LibraryRoot() string {
	if v := Get(KeyLibraryRoot); v != "" {
		return v
	}
	return DefaultLibraryRoot
}

// ManifestPath returns the path of the node library's requirements manifest.
func ManifestPath() string {
	if v := Get(KeyManifestPath); v != "" {
		return v
	}
	return DefaultManifestPath
}

// OutputPath returns the well-known catalog destination.
func OutputPath() string {
	if v := Get(KeyOutputPath); v != "" {
		return v
	}
	return DefaultOutputPath
}
