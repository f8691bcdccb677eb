// Package config manages user-level settings stored at ~/.pipedex/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the analyzed library root and the catalog output path, with PIPEDEX_*
// environment variables taking precedence.
package config
